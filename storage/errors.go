package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Refined error categories handlers can branch on without knowing driver
// internals. The original driver error stays wrapped underneath.
var (
	ErrNotFound    = errors.New("storage: not found")
	ErrConflict    = errors.New("storage: conflict")
	ErrUnavailable = errors.New("storage: unavailable")
)

// Postgres error classes used for refinement; individual codes within a class
// do not change the category handlers act on.
const (
	classIntegrityViolation = "23"
	classConnection         = "08"
)

// refine maps driver errors into the exported categories.
func refine(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == classIntegrityViolation:
			return fmt.Errorf("%w: %w", ErrConflict, err)
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnection:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}

	if pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
