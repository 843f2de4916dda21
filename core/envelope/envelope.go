package envelope

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform container for a handler outcome. It is a tagged
// variant over three payload shapes (structured body, raw bytes, error text)
// with status code, content type and the finished flag as orthogonal fields.
//
// A business function produces exactly one Envelope per request; the adapter
// consumes it exactly once when serializing the response.
type Envelope struct {
	body        any
	raw         []byte
	err         string
	status      int
	contentType string
	finished    bool
}

// JSON returns an envelope carrying a structured body. The body is encoded
// as application/json at write time unless the content type is overridden.
func JSON(v any) Envelope {
	return Envelope{body: v}
}

// Text returns an envelope carrying a plain-text body.
func Text(s string) Envelope {
	return Envelope{raw: []byte(s)}
}

// Raw returns an envelope carrying raw bytes. They pass through unencoded,
// defaulting to text/plain unless the content type is overridden.
func Raw(b []byte) Envelope {
	return Envelope{raw: b}
}

// Error returns an envelope carrying an error message. The message is written
// as the response body; the status defaults to 500 unless overridden.
func Error(msg string) Envelope {
	return Envelope{err: msg}
}

// Empty returns an envelope with no body and no error. It serializes to an
// empty response with status 204 unless a status is set explicitly.
func Empty() Envelope {
	return Envelope{}
}

// Finished returns an envelope that marks the connection as taken over. The
// adapter performs no further writes; used by handlers that complete the
// response themselves, e.g. after a WebSocket upgrade.
func Finished() Envelope {
	return Envelope{finished: true}
}

// WithStatus returns a copy with an explicit status code.
func (e Envelope) WithStatus(status int) Envelope {
	e.status = status
	return e
}

// WithContentType returns a copy with an explicit Content-Type value.
func (e Envelope) WithContentType(ct string) Envelope {
	e.contentType = ct
	return e
}

// IsFinished reports whether the handler took over the connection.
func (e Envelope) IsFinished() bool {
	return e.finished
}

// Err returns the error message carried by the envelope, if any.
func (e Envelope) Err() string {
	return e.err
}

// Status returns the explicit status code, or zero if defaulting applies.
func (e Envelope) Status() int {
	return e.status
}

// Write serializes the envelope to w following the defaulting rules:
//
//   - raw bytes pass through as text/plain with status 200,
//   - a structured body is JSON-encoded as application/json with status 200,
//   - an error message is written as the body with status 500,
//   - neither body nor error yields an empty response with status 204.
//
// An explicit status or content type always wins over the default. An error
// message sent with a non-error status is a programming-contract violation:
// it is logged as a warning but still sent as given.
func (e Envelope) Write(w http.ResponseWriter, log *slog.Logger) error {
	switch {
	case e.raw != nil:
		ct := e.contentType
		if ct == "" {
			ct = "text/plain; charset=utf-8"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(statusOr(e.status, http.StatusOK))
		_, err := w.Write(e.raw)
		return err

	case e.body != nil:
		ct := e.contentType
		if ct == "" {
			ct = "application/json; charset=utf-8"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(statusOr(e.status, http.StatusOK))
		return json.NewEncoder(w).Encode(e.body)

	case e.err != "":
		status := statusOr(e.status, http.StatusInternalServerError)
		if status < http.StatusBadRequest && log != nil {
			log.Warn("error envelope carries a non-error status",
				"status", status, "error", e.err)
		}
		ct := e.contentType
		if ct == "" {
			ct = "text/plain; charset=utf-8"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(status)
		_, err := w.Write([]byte(e.err))
		return err

	default:
		if e.contentType != "" {
			w.Header().Set("Content-Type", e.contentType)
		}
		w.WriteHeader(statusOr(e.status, http.StatusNoContent))
		return nil
	}
}

func statusOr(status, fallback int) int {
	if status == 0 {
		return fallback
	}
	return status
}
