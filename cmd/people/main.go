package main

import (
	"log/slog"
	"os"

	"github.com/mmynk/people/internal/cli"
	"github.com/mmynk/people/internal/config"
	"github.com/mmynk/people/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(config.DefaultLogLevel)
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		slog.Error("people failed", "error", err)
		os.Exit(1)
	}
}
