package app

import (
	"io"
	"log/slog"
)

// newLogger builds the engine instance's own logger. It never touches the
// process-global default, so embedding callers and parallel test runs each
// keep isolated log configuration.
func newLogger(level, format string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// parseLevel maps the CLI level names onto slog levels. Unrecognized input
// falls back to info; the CLI validates before it gets here.
func parseLevel(s string) slog.Level {
	switch s {
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
