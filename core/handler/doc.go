// Package handler defines the contracts shared by the router, the middleware
// pipeline and the request adapter: the typed per-request Context, business
// function and pipeline step signatures, the uniform Invoker every handler is
// bound into, and the Host view of the owning server.
package handler
