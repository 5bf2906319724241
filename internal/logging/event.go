package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Event emits a structured diagnostic log entry. Failed outcomes are
// logged at error level, everything else at info.
func Event(ctx context.Context, event, outcome, msg string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "fail", "failed", "failure", "error":
		level = slog.LevelError
	}
	logger := slog.Default().With(
		"event", event,
		"outcome", outcome,
	)
	if len(attrs) == 0 {
		logger.Log(ctx, level, msg)
		return
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}
