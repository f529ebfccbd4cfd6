package logging

import (
	"io"
	"log/slog"
)

// New returns a JSON logger for production and a text logger otherwise, and
// installs it as the slog default.
func New(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("service", "inventory-api"))
	slog.SetDefault(logger)
	return logger
}
