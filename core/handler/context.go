package handler

import (
	"net/http"
	"time"

	"github.com/hexient-labs/portico/core/arena"
)

// Context is the ephemeral per-request state. One instance exists per
// in-flight request; it is created at dispatch time and becomes invalid once
// the response is flushed and the arena is reset. Middleware steps populate
// the typed business state B incrementally; the business function reads it.
//
// Context implements context.Context by delegating to the request's context.
type Context[B any] struct {
	w        http.ResponseWriter
	r        *http.Request
	arena    *arena.Arena
	host     Host
	biz      B
	finished bool
}

// NewContext builds a request context around the wrapped response writer,
// the raw request, the request's arena and the owning server instance. The
// business state starts zeroed.
func NewContext[B any](w http.ResponseWriter, r *http.Request, a *arena.Arena, host Host) *Context[B] {
	return &Context[B]{w: w, r: r, arena: a, host: host}
}

// Deadline delegates to the request's context.
func (c *Context[B]) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context[B]) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context[B]) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request's context.
func (c *Context[B]) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the raw request handle.
func (c *Context[B]) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer for this request.
func (c *Context[B]) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Arena returns the request's scratch allocator.
func (c *Context[B]) Arena() *arena.Arena {
	return c.arena
}

// Host returns the owning server instance.
func (c *Context[B]) Host() Host {
	return c.host
}

// Biz returns a mutable reference to the typed business state.
func (c *Context[B]) Biz() *B {
	return &c.biz
}

// Finish marks the request as finished: a response (or error) has been
// written, or the connection has been handed off. Remaining pipeline steps,
// the business function and envelope serialization are all skipped once set.
func (c *Context[B]) Finish() {
	c.finished = true
}

// Finished reports whether the request has been marked finished.
func (c *Context[B]) Finished() bool {
	return c.finished
}
