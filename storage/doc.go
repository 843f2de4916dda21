// Package storage is the persistence collaborator consumed by handlers: a
// pgx connection pool with acquire/release semantics, structured query
// execution returning typed rows or refined error categories, and the goose
// migration entry point. It does not participate in dispatch; blocking calls
// made through it block the calling worker for the duration.
package storage
