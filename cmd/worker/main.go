package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/GoSim-25-26J-441/archbot-backend/config"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries command output
	log := logger.InitWriter(os.Stderr, cfg.App.LogLevel, "text")

	w := &worker{
		log:   log,
		color: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		openApp: func(ctx context.Context) (*bootstrap.App, error) {
			return bootstrap.NewApp(ctx, cfg, log)
		},
	}
	return newRootCmd(w).Execute()
}
