// Package logging configures the process-wide slog logger. Loop state
// transitions log at info; absorbed collaborator failures log at warn
// or debug so terminal states stay distinguishable from real failures.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default logger. Logs go to stderr so the judgment
// prompts own stdout.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
