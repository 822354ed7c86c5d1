// Package logger builds the application's structured logger from configuration.
package logger

import (
	"io"
	"log/slog"

	"github.com/yardimci/pageroute/internal/config"
)

// New creates a logger writing to w with the configured level and format.
func New(cfg *config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level.ToSlogLevel(),
	}

	var handler slog.Handler
	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
