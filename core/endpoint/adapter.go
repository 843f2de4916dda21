package endpoint

import (
	"net/http"

	"github.com/hexient-labs/portico/contract"
	"github.com/hexient-labs/portico/core/arena"
	"github.com/hexient-labs/portico/core/handler"
	"github.com/hexient-labs/portico/core/logger"
	"github.com/hexient-labs/portico/core/pipeline"
)

// Adapter binds a typed business function and its declared capabilities into
// the uniform invocation signature the router dispatches through. It is built
// once per endpoint/verb pair at registration time and is immutable after.
type Adapter[B any] struct {
	fn    handler.Func[B]
	steps []handler.Step[B]
	desc  contract.Descriptor
}

// New builds an adapter for the business function with the declared
// capabilities. The middleware steps are assembled once, in the fixed
// pipeline order, and shared by all requests hitting this handler.
func New[B any](fn handler.Func[B], opts ...Option[B]) *Adapter[B] {
	o := newOptions(opts)
	return &Adapter[B]{
		fn:    fn,
		steps: pipeline.Assemble(o.caps),
		desc:  o.desc,
	}
}

// Invoke runs one request through the adapter: zeroed business context,
// middleware pipeline, business function, envelope serialization. Once the
// context is finished, by a short-circuiting step or by the function taking
// over the connection, no further writes happen on this path.
func (ad *Adapter[B]) Invoke(a *arena.Arena, host handler.Host, w http.ResponseWriter, r *http.Request, errh handler.ErrorHandler) {
	ctx := handler.NewContext[B](w, r, a, host)

	if err := pipeline.Run(ctx, ad.steps); err != nil {
		return // error response already written by the pipeline
	}
	if ctx.Finished() {
		return
	}

	env, err := ad.fn(ctx, a)
	if err != nil {
		invokeErrorHandler(host, errh, w, r, err)
		ctx.Finish()
		return
	}

	if env.IsFinished() {
		// The function took over the connection; nothing left to write.
		ctx.Finish()
		return
	}

	if werr := env.Write(w, host.Logger()); werr != nil {
		host.Logger().Error("failed to serialize response envelope",
			logger.Error(werr), logger.Route(r.Method, r.URL.Path))
	}
	ctx.Finish()
}

// Descriptor exposes the declared query, body and response types for the
// client-contract generator.
func (ad *Adapter[B]) Descriptor() contract.Descriptor {
	return ad.desc
}

// invokeErrorHandler calls the endpoint's error handler, which must not
// panic. A nested failure is logged and swallowed: the request degrades to
// whatever the transport already sent.
func invokeErrorHandler(host handler.Host, errh handler.ErrorHandler, w http.ResponseWriter, r *http.Request, err error) {
	if errh == nil {
		host.Logger().Error("business function failed with no error handler",
			logger.Error(err), logger.Route(r.Method, r.URL.Path))
		return
	}
	defer func() {
		if p := recover(); p != nil {
			host.Logger().Error("error handler panicked",
				"panic", p, "original_error", err, logger.Route(r.Method, r.URL.Path))
		}
	}()
	errh(w, r, err)
}
