package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"dbpool/internal/config"
	"dbpool/internal/db"
	"dbpool/internal/health"
	"dbpool/internal/logging"
)

func main() {
	cfg, loadedEnv, err := config.FromProcess()
	if err != nil {
		logging.Init("")
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel)

	if len(loadedEnv) > 0 {
		for _, p := range loadedEnv {
			slog.Info("loaded env file", "path", p)
		}
	} else if !cfg.DotEnvEnabled() {
		slog.Info("dotenv loading disabled")
	} else {
		slog.Info("no .env files found", "note", "ok in production")
	}

	// A missing DATABASE_URL leaves the stand-in in place; /health reports 503.
	database, err := db.Shared(context.Background(), cfg.DatabaseURL)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		slog.Warn("DATABASE_URL not set; database operations will fail until it is configured")
	case err != nil:
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           health.Handler(database),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("starting http server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("http server stopped", "error", err)
		os.Exit(1)
	}
}
