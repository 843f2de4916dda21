package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON creates a binder that decodes the request body as a JSON object (or
// union, via json.RawMessage fields) into the target struct. Decode failures
// surface as *ValidationError so they translate to 400 Bad Request.
func JSON() Binder {
	return func(r *http.Request, v any) error {
		if r.Body == nil {
			return &ValidationError{Field: "body", Expected: "json object", Reason: "missing request body"}
		}
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return &ValidationError{Field: "body", Expected: "json object", Reason: "missing request body"}
			}
			return &ValidationError{Field: "body", Expected: "json object", Reason: "malformed json"}
		}
		return nil
	}
}

// Text creates a binder that passes the raw request body through unparsed.
// The target must be a *string or *[]byte.
func Text() Binder {
	return func(r *http.Request, v any) error {
		if r.Body == nil {
			return &ValidationError{Field: "body", Expected: "raw body", Reason: "missing request body"}
		}
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnreadableBody, err)
		}
		switch dst := v.(type) {
		case *string:
			*dst = string(b)
		case *[]byte:
			*dst = b
		default:
			return fmt.Errorf("%w: raw body target must be *string or *[]byte", ErrInvalidTarget)
		}
		return nil
	}
}
