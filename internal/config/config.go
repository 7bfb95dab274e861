package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Optional file supplying the couple pairs instead of stdin.
	CouplesFile string
}

func Load() *Config {
	return &Config{
		LogLevel:    getEnv("PLANEJADOR_LOG_LEVEL", "info"),
		LogFormat:   getEnv("PLANEJADOR_LOG_FORMAT", "pretty"),
		CouplesFile: getEnv("PLANEJADOR_CASAIS_FILE", ""),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch c.LogFormat {
	case "pretty", "text":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'pretty' or 'text'", c.LogFormat))
	}

	if c.CouplesFile != "" {
		if info, err := os.Stat(c.CouplesFile); err != nil {
			errors = append(errors, fmt.Sprintf("couples file '%s' is not readable: %v", c.CouplesFile, err))
		} else if info.IsDir() {
			errors = append(errors, fmt.Sprintf("couples file '%s' is a directory", c.CouplesFile))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured level name onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
