package server

import "time"

// Transport-level defaults applied when no option or config overrides them.
// They favor an API workload: short request deadlines, a long idle window so
// keep-alive connections survive between polls.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes bounds request header parsing at 1 MB.
	DefaultMaxHeaderBytes = 1 << 20
)
