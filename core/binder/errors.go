package binder

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidTarget is returned when the bind target is not a non-nil
	// pointer of a supported shape.
	ErrInvalidTarget = errors.New("binder: target must be a non-nil pointer")

	// ErrUnreadableBody is returned when the request body cannot be read.
	ErrUnreadableBody = errors.New("binder: request body is unreadable")
)

// ValidationError reports a missing or malformed request parameter. It names
// the offending field and the expected type so clients get an actionable
// message, and carries a 400 status for the error-to-response translation.
type ValidationError struct {
	Field    string
	Expected string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("parameter %q: %s (expected %s)", e.Field, e.Reason, e.Expected)
	}
	return fmt.Sprintf("parameter %q: expected %s", e.Field, e.Expected)
}

// StatusCode marks validation failures as 400 Bad Request.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}
