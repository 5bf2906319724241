package db

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"dbpool/internal/logging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	checkQuery = "SELECT 1"
	checkHint  = "check that DATABASE_URL is correct and the database accepts connections from this host"
)

// RowQuerier is the part of DB that Check needs.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SQLProbe lets Check run against a database/sql handle.
type SQLProbe struct {
	DB *sql.DB
}

func (p SQLProbe) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return p.DB.QueryRowContext(ctx, query, args...)
}

// Check runs one round trip against q and logs the outcome. The returned
// error is for callers that want it; the log line is the primary report.
func Check(ctx context.Context, q RowQuerier) error {
	var one int
	err := q.QueryRow(ctx, checkQuery).Scan(&one)
	if err == nil {
		logging.Event(ctx, "database.check", "success", "database connection successful")
		return nil
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		attrs[0] = slog.String("message", pgErr.Message)
		if pgErr.Code != "" {
			attrs = append(attrs, slog.String("code", pgErr.Code))
		}
		if pgErr.Severity != "" {
			attrs = append(attrs, slog.String("severity", pgErr.Severity))
		}
	} else if code, ok := errnoCode(err); ok {
		attrs = append(attrs, slog.String("code", code))
	}
	attrs = append(attrs, slog.String("hint", checkHint))
	logging.Event(ctx, "database.check", "failure", "database connection failed", attrs...)
	return err
}

// CheckInBackground starts Check in its own goroutine and returns at once.
// The channel receives the single result and is then closed; nobody is
// required to read it.
func CheckInBackground(ctx context.Context, q RowQuerier) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- Check(ctx, q)
	}()
	return done
}
