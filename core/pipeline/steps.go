package pipeline

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hexient-labs/portico/core/binder"
	"github.com/hexient-labs/portico/core/handler"
)

// RequestCarrier is implemented by business contexts that want the raw
// request handle attached as their first pipeline step.
type RequestCarrier interface {
	AttachRequest(*http.Request)
}

// RequestIDCarrier is implemented by business contexts that want the
// generated request ID.
type RequestIDCarrier interface {
	SetRequestID(string)
}

// attach is the fixed first step: it hands the raw request reference to
// business contexts that declare the capability.
func attach[B any]() handler.Step[B] {
	return func(ctx *handler.Context[B]) error {
		if rc, ok := any(ctx.Biz()).(RequestCarrier); ok {
			rc.AttachRequest(ctx.Request())
		}
		return nil
	}
}

// CORS returns the header-injection step. The headers are set before any
// body write, so they reach the client even when a later step or the business
// function fails.
func CORS[B any]() handler.Step[B] {
	return func(ctx *handler.Context[B]) error {
		SetCORSHeaders(ctx.ResponseWriter().Header())
		return nil
	}
}

// SetCORSHeaders writes the fixed CORS header values.
func SetCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// Bind adapts a binder into a pipeline step. sel selects the target inside
// the business context the binder populates.
func Bind[B any](bind binder.Binder, sel func(*B) any) handler.Step[B] {
	return func(ctx *handler.Context[B]) error {
		return bind(ctx.Request(), sel(ctx.Biz()))
	}
}

// RequestID returns a custom step that tags the response with a generated
// request ID and hands it to business contexts that declare the capability.
// An inbound X-Request-ID is kept so IDs survive proxy hops.
func RequestID[B any]() handler.Step[B] {
	return func(ctx *handler.Context[B]) error {
		id := ctx.Request().Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.ResponseWriter().Header().Set("X-Request-ID", id)
		if rc, ok := any(ctx.Biz()).(RequestIDCarrier); ok {
			rc.SetRequestID(id)
		}
		return nil
	}
}
