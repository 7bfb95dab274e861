package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLANEJADOR_LOG_LEVEL", "")
	t.Setenv("PLANEJADOR_LOG_FORMAT", "")
	t.Setenv("PLANEJADOR_CASAIS_FILE", "")

	cfg := Load()
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "pretty" {
		t.Fatalf("default log format = %q, want pretty", cfg.LogFormat)
	}
	if cfg.CouplesFile != "" {
		t.Fatalf("default couples file should be empty, got %q", cfg.CouplesFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	pairs := filepath.Join(t.TempDir(), "casais.txt")
	if err := os.WriteFile(pairs, []byte("111,222\n"), 0o644); err != nil {
		t.Fatalf("write pairs file: %v", err)
	}
	t.Setenv("PLANEJADOR_LOG_LEVEL", "debug")
	t.Setenv("PLANEJADOR_LOG_FORMAT", "text")
	t.Setenv("PLANEJADOR_CASAIS_FILE", pairs)

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config should validate: %v", err)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if cfg.CouplesFile != pairs {
		t.Fatalf("couples file = %q, want %q", cfg.CouplesFile, pairs)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"bad level", Config{LogLevel: "loud", LogFormat: "text"}},
		{"bad format", Config{LogLevel: "info", LogFormat: "xml"}},
		{"missing couples file", Config{LogLevel: "info", LogFormat: "text", CouplesFile: "/nonexistent/casais.txt"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
