// Package logger configures the process wide slog logger
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-catalog/internal/config"
)

// Setup configures the global slog logger for the environment and returns it
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup writing to w. Production logs JSON, everything
// else logs text.
func SetupWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == config.EnvironmentProduction {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With("service", "rpg-catalog")
	slog.SetDefault(logger)

	return logger
}

// WithError adds an error to the logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
