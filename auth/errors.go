package auth

import (
	"errors"
	"net/http"
)

var (
	ErrMissingSigningKey = errors.New("auth: signing key is required")
	ErrMalformedToken    = errors.New("auth: malformed token")
	ErrInvalidSignature  = errors.New("auth: invalid token signature")
	ErrExpiredToken      = errors.New("auth: token has expired")
	ErrTokenNotYetValid  = errors.New("auth: token is not valid yet")

	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// UnauthorizedError is the pipeline-facing failure of the auth step; it
// carries a 401 status for the error-to-response translation.
type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

// StatusCode marks authentication failures as 401 Unauthorized.
func (e *UnauthorizedError) StatusCode() int {
	return http.StatusUnauthorized
}
