// Package main is the entry point for the skyview model viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/skyview/internal/app"
	"github.com/Faultbox/skyview/internal/config"
	"github.com/Faultbox/skyview/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== skyview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return 0
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return 1
	}

	runErr := a.Run()
	closeErr := a.Close()

	if runErr != nil {
		logger.Error("viewer error", zap.Error(runErr))
		return 1
	}
	if closeErr != nil {
		logger.Warn("cleanup error", zap.Error(closeErr))
	}

	logger.Info("viewer closed normally")
	return 0
}
