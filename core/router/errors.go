package router

import "errors"

var (
	// ErrPathConflict is returned when a registered path is byte-identical to
	// an existing one. Registration must abort server start on it.
	ErrPathConflict = errors.New("router: path already registered")

	// ErrSealed is returned when registering after Listen sealed the registry.
	ErrSealed = errors.New("router: registry is sealed")

	// ErrInvalidPath is returned for registration paths not starting with '/'.
	ErrInvalidPath = errors.New("router: path must begin with '/'")

	// ErrNotSealed is returned when contract metadata is requested before the
	// registry is sealed.
	ErrNotSealed = errors.New("router: registry is not sealed yet")
)
