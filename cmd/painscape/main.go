// Package main is the entry point for the Painscape desktop application.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/app"
	"github.com/painscape/painscape/internal/config"
	"github.com/painscape/painscape/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Painscape ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run application
	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create application", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	a.Run()

	logger.Info("application closed normally")
}
