// Package router owns the endpoint registry and the per-request dispatch
// loop of the server core.
//
// Endpoints are registered before Listen seals the registry; sealing sorts
// them by descending path length so the longest-match-first prefix scan
// resolves overlapping paths to the most specific endpoint. After sealing the
// registry is read-only and dispatch needs no locks. Each request borrows a
// scratch arena keyed by the matched endpoint's slot, runs its handler chain,
// and returns the arena (reset, capacity retained) once the response is
// flushed.
//
// WebSocket upgrades are gated before the handler runs: the negotiated
// upgrade target must equal the literal "websocket", anything else is a 400
// and the endpoint's WebSocket handler is never reached.
package router
