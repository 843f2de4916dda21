package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Service issues and validates HMAC-SHA256 signed tokens (RFC 7519).
// Signature verification uses a constant-time comparison.
type Service struct {
	key []byte
}

// New creates a token service with the given signing key.
func New(key []byte) (*Service, error) {
	if len(key) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{key: key}, nil
}

// NewFromString creates a token service from a string signing key.
func NewFromString(key string) (*Service, error) {
	return New([]byte(key))
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Generate signs the claims and returns the compact token text. Claims can be
// any JSON-serializable value; embed StandardClaims for temporal validation.
func (s *Service) Generate(claims any) (string, error) {
	head, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("auth: encode header: %w", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("auth: encode claims: %w", err)
	}

	enc := base64.RawURLEncoding
	signing := enc.EncodeToString(head) + "." + enc.EncodeToString(payload)
	return signing + "." + enc.EncodeToString(s.sign(signing)), nil
}

// Parse verifies the token signature and temporal claims, then unmarshals the
// payload into claims.
func (s *Service) Parse(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrMalformedToken
	}

	enc := base64.RawURLEncoding
	sig, err := enc.DecodeString(parts[2])
	if err != nil {
		return ErrMalformedToken
	}
	if !hmac.Equal(sig, s.sign(parts[0]+"."+parts[1])) {
		return ErrInvalidSignature
	}

	payload, err := enc.DecodeString(parts[1])
	if err != nil {
		return ErrMalformedToken
	}

	var std StandardClaims
	if err := json.Unmarshal(payload, &std); err != nil {
		return ErrMalformedToken
	}
	if err := std.validate(time.Now()); err != nil {
		return err
	}

	if err := json.Unmarshal(payload, claims); err != nil {
		return ErrMalformedToken
	}
	return nil
}

// Validate implements the Validator interface consumed by the dispatch core:
// it verifies the token text and returns its standard claims.
func (s *Service) Validate(token string) (StandardClaims, error) {
	var claims StandardClaims
	if err := s.Parse(token, &claims); err != nil {
		return StandardClaims{}, err
	}
	return claims, nil
}

func (s *Service) sign(signing string) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(signing))
	return mac.Sum(nil)
}
