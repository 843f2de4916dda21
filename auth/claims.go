package auth

import (
	"time"

	"github.com/google/uuid"
)

// StandardClaims are the registered JWT claims this module validates.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// NewStandardClaims builds claims for a subject with a generated token ID and
// the given lifetime.
func NewStandardClaims(subject string, ttl time.Duration) StandardClaims {
	now := time.Now()
	return StandardClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
}

// validate checks the temporal claims against now.
func (c StandardClaims) validate(now time.Time) error {
	if c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore != 0 && now.Unix() < c.NotBefore {
		return ErrTokenNotYetValid
	}
	return nil
}
