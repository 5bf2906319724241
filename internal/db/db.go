package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// MaxConns is the upper bound on physical connections held by the shared pool.
const MaxConns = 5

// DB is the handle shared with the rest of the application. *pgxpool.Pool
// satisfies it, and so does the stand-in returned by Unconfigured.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Open builds a pool for databaseURL with the TLS policy derived from it.
// No connection is dialed here; the first query establishes one.
func Open(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	return openWithPolicy(ctx, databaseURL, PolicyFor(databaseURL))
}

func openWithPolicy(ctx context.Context, databaseURL string, policy TLSPolicy) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	policy.apply(&cfg.ConnConfig.Config)
	cfg.MaxConns = MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

// OpenSQL exposes pool through database/sql without creating a second pool.
// Closing the returned *sql.DB does not close pool.
func OpenSQL(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}
