package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything. Keeps service tests quiet.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}
