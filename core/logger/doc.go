// Package logger provides slog attribute helpers shared across the module.
package logger
