package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/namousaymane/KooraGoal/internal/config"
	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/server"
)

const (
	appName    = "koora-data"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stop context.CancelFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "server startup failed", err)
		return err
	}
	srv.Run(ctx, stop)
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})
}
