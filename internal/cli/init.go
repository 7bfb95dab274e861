// Package cli provides common CLI initialization utilities shared by the
// planejador entrypoint: .env loading, configuration, and logger setup.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"planejador/internal/config"
	applog "planejador/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger initializes structured logging from the configuration and sets
// it as the default logger. The pretty format uses a tinted console handler;
// text falls back to slog's plain handler.
func SetupLogger(cfg *config.Config) *applog.Logger {
	var handler slog.Handler
	switch cfg.LogFormat {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})
	default:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: time.TimeOnly,
		})
	}
	logger := applog.New(applog.Config{
		Level:     cfg.SlogLevel(),
		Component: applog.ComponentApp,
		Handler:   handler,
	})
	applog.SetDefault(logger)
	return logger
}
