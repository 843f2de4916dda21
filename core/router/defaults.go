package router

import (
	"net/http"

	"github.com/hexient-labs/portico/core/logger"
	"github.com/hexient-labs/portico/core/pipeline"
)

// Baseline behavior for requests no registered handler covers: 404 for
// unmatched paths and unhandled verbs, 500 for unhandled internal errors,
// and the automatic OPTIONS/CORS preflight answer. Outside production the
// baseline responses carry the CORS headers so browser tooling can read them.

func (rt *Router) notFound(w *responseWriter) {
	if !rt.production {
		pipeline.SetCORSHeaders(w.Header())
	}
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func (rt *Router) preflight(w *responseWriter) {
	pipeline.SetCORSHeaders(w.Header())
	w.WriteHeader(http.StatusNoContent)
}

func (rt *Router) reject(w *responseWriter, status int, msg string) {
	if w.Written() {
		return
	}
	if !rt.production {
		pipeline.SetCORSHeaders(w.Header())
	}
	http.Error(w, msg, status)
}

// defaultErrorHandler is used for endpoints that register no error handler:
// it logs the business error and degrades the request to a plain 500.
func (rt *Router) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	rt.log.Error("unhandled business error",
		logger.Error(err), logger.Route(r.Method, r.URL.Path))

	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}
	if !rt.production {
		pipeline.SetCORSHeaders(w.Header())
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
