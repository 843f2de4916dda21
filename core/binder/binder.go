package binder

import "net/http"

// Binder binds data from an HTTP request into a typed Go value. Implementations
// exist for query parameters, JSON bodies and raw body passthrough; the
// pipeline runs them as middleware steps against the request's business context.
type Binder func(r *http.Request, v any) error
