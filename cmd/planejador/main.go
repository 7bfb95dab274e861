package main

import (
	"fmt"
	"io"
	"os"

	"planejador/internal/cli"
	applog "planejador/internal/log"
	"planejador/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors elsewhere)
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg)

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input-directory>\n", os.Args[0])
		os.Exit(1)
	}
	dir := os.Args[1]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Invalid folder path: %s\n", dir)
		os.Exit(1)
	}

	// Couple pairs come from stdin unless a file was configured.
	var pairs io.Reader = os.Stdin
	if cfg.CouplesFile != "" {
		f, err := os.Open(cfg.CouplesFile)
		if err != nil {
			logger.Error("failed to open couples file", applog.FieldFile, cfg.CouplesFile, applog.FieldError, err)
			os.Exit(1)
		}
		defer f.Close()
		pairs = f
	}

	svc := services.NewPlanningService(dir, logger)
	if err := svc.Run(pairs); err != nil {
		logger.Error("planning run aborted", applog.FieldDirectory, dir, applog.FieldError, err)
		os.Exit(1)
	}
}
