// Package server provides the HTTP transport the dispatch core plugs into:
// an http.Server wrapper with graceful shutdown, transport-level timeouts and
// environment-driven configuration. It deliberately does not terminate TLS.
package server
