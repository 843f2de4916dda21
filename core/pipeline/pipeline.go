package pipeline

import (
	"net/http"

	"github.com/hexient-labs/portico/core/handler"
	"github.com/hexient-labs/portico/core/logger"
)

// statusCoder is implemented by errors that carry their own HTTP status,
// e.g. *binder.ValidationError.
type statusCoder interface {
	StatusCode() int
}

// Caps declares the capabilities a handler needs from the pipeline. The
// assembler wires the corresponding built-in steps in a fixed order; handlers
// never reorder them.
type Caps[B any] struct {
	CORS   bool
	Query  handler.Step[B]
	Body   handler.Step[B]
	Custom []handler.Step[B]
}

// Assemble builds the ordered step list for the declared capabilities:
// request attach, CORS header injection, query extraction, body extraction,
// then caller-supplied custom steps in declaration order.
func Assemble[B any](caps Caps[B]) []handler.Step[B] {
	steps := make([]handler.Step[B], 0, 4+len(caps.Custom))
	steps = append(steps, attach[B]())
	if caps.CORS {
		steps = append(steps, CORS[B]())
	}
	if caps.Query != nil {
		steps = append(steps, caps.Query)
	}
	if caps.Body != nil {
		steps = append(steps, caps.Body)
	}
	steps = append(steps, caps.Custom...)
	return steps
}

// Run executes the steps sequentially against one request context. A step
// that marks the context finished stops the pipeline; a step error writes an
// error response, marks the context finished and stops the pipeline. Either
// way no later step runs, and the caller must skip the business function.
func Run[B any](ctx *handler.Context[B], steps []handler.Step[B]) error {
	for _, step := range steps {
		if ctx.Finished() {
			return nil
		}
		if err := step(ctx); err != nil {
			writeStepError(ctx, err)
			return err
		}
	}
	return nil
}

// writeStepError sends the step failure to the client and seals the context.
// Errors carrying their own status (validation failures) keep it; anything
// else is an internal error.
func writeStepError[B any](ctx *handler.Context[B], err error) {
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCoder); ok {
		status = sc.StatusCode()
	}
	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, werr := w.Write([]byte(err.Error())); werr != nil {
		ctx.Host().Logger().Error("failed to write pipeline error response",
			logger.Error(werr), "path", ctx.Request().URL.Path)
	}
	ctx.Finish()
}
