package handler

import (
	"log/slog"
	"net/http"

	"github.com/hexient-labs/portico/contract"
	"github.com/hexient-labs/portico/core/arena"
	"github.com/hexient-labs/portico/core/envelope"
)

// Func is a typed business function. It receives the per-request context with
// its populated business state and the request's scratch arena, and produces
// exactly one response envelope. A non-nil error bypasses the envelope and is
// routed to the endpoint's error handler instead.
type Func[B any] func(ctx *Context[B], a *arena.Arena) (envelope.Envelope, error)

// Step is one stage of the middleware pipeline. A step may mutate the business
// context, leave it untouched, or mark the context finished after writing a
// response itself. A non-nil error short-circuits the pipeline.
type Step[B any] func(ctx *Context[B]) error

// ErrorHandler translates a business-function error into a response. It must
// not panic; a panicking error handler is logged and swallowed by the adapter.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Invoker is the uniform invocation signature every endpoint/verb handler is
// bound into at registration time. The router dispatches through it without
// knowing the handler's concrete context, query or body types.
type Invoker interface {
	Invoke(a *arena.Arena, host Host, w http.ResponseWriter, r *http.Request, errh ErrorHandler)
	Descriptor() contract.Descriptor
}

// Host is the request context's view of the owning server instance.
type Host interface {
	Logger() *slog.Logger
	// Production reports whether the server runs in production mode; default
	// CORS headers on baseline responses are emitted only outside production.
	Production() bool
}
