package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds connection settings with environment variable support.
type Config struct {
	DSN             string `env:"DATABASE_URL,required"`
	MaxConns        int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MinConns        int32  `env:"DATABASE_MIN_CONNS" envDefault:"0"`
	ApplicationName string `env:"DATABASE_APP_NAME" envDefault:"portico"`
}

// Pool is the storage collaborator consumed by handlers: connection
// acquisition/release plus structured query execution with refined error
// categories. Any shared mutable state behind it is the pool's concern, not
// the dispatch core's.
type Pool struct {
	db *pgxpool.Pool
}

// Connect builds the pool and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("storage: parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	pc.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName

	db, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("storage: create pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, refine(err)
	}
	return &Pool{db: db}, nil
}

// Acquire checks a connection out of the pool. Callers must Release it.
func (p *Pool) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	conn, err := p.db.Acquire(ctx)
	if err != nil {
		return nil, refine(err)
	}
	return conn, nil
}

// Release returns a connection to the pool.
func (p *Pool) Release(conn *pgxpool.Conn) {
	if conn != nil {
		conn.Release()
	}
}

// Close drains the pool.
func (p *Pool) Close() {
	p.db.Close()
}

// Select runs a query and collects all rows into T by column name.
func Select[T any](ctx context.Context, p *Pool, sql string, args ...any) ([]T, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, refine(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, refine(err)
	}
	return out, nil
}

// Get runs a query expected to return exactly one row.
func Get[T any](ctx context.Context, p *Pool, sql string, args ...any) (T, error) {
	var zero T
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return zero, refine(err)
	}
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, refine(err)
	}
	return out, nil
}

// Exec runs a statement and discards the result.
func (p *Pool) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		return refine(err)
	}
	return nil
}
