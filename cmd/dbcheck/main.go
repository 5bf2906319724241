// Command dbcheck opens the configured database pool, waits for the startup
// connectivity check and exits non-zero if it fails.
package main

import (
	"context"
	"log/slog"
	"os"

	"dbpool/internal/config"
	"dbpool/internal/db"
	"dbpool/internal/logging"
)

func main() {
	cfg, _, err := config.FromProcess()
	if err != nil {
		logging.Init("")
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel)

	os.Exit(run(context.Background(), cfg.DatabaseURL))
}

func run(ctx context.Context, databaseURL string) int {
	d, done, err := db.Start(ctx, databaseURL)
	if err != nil {
		if d == nil {
			slog.Error("failed to open database", "error", err)
		}
		return 1
	}
	defer d.Close()

	if err := <-done; err != nil {
		return 1
	}
	return 0
}
