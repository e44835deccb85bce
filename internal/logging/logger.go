package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger.
// It writes to Stderr: Stdout carries only rendered artifact output, which
// callers may pipe or diff, so diagnostics must never interleave with it.
func New(level slog.Level) *slog.Logger {
	return NewAt(os.Stderr, level)
}

// NewAt creates a logger writing to w. Tests use this to capture output.
// It standardizes common keys (e.g., "error" -> "err").
func NewAt(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
