package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotConfigured is returned by every operation of the Unconfigured stand-in.
var ErrNotConfigured = errors.New("DATABASE_URL not configured")

type unconfigured struct{}

// Unconfigured returns a DB that is safe to hand out but fails every query
// with ErrNotConfigured. Close is a no-op.
func Unconfigured() DB {
	return unconfigured{}
}

func (unconfigured) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrNotConfigured
}

func (unconfigured) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, ErrNotConfigured
}

func (unconfigured) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

func (unconfigured) Ping(context.Context) error {
	return ErrNotConfigured
}

func (unconfigured) Close() {}

type errRow struct{}

func (errRow) Scan(...any) error {
	return ErrNotConfigured
}
