package logger

import (
	"log/slog"
	"strings"
)

// New builds a slog.Logger from a config-level string and a handler
// constructor, so main can pick the Cloud Run handler and tests a discard
// handler.
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	return slog.New(handler(parseLevel(level)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
