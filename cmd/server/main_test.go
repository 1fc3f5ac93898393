package main

import (
	"context"
	"testing"

	"github.com/namousaymane/KooraGoal/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	t.Setenv("ENV_FILE", t.TempDir()+"/missing.env")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("PORT", "0")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, cancel); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunReportsStoreFailure(t *testing.T) {
	t.Setenv("ENV_FILE", t.TempDir()+"/missing.env")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := run(ctx, cancel); err == nil {
		t.Fatalf("expected startup error for unreachable redis")
	}
}

func TestNewLoggerUsesConfig(t *testing.T) {
	logger := newLogger(config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}})
	if !logger.Enabled(context.Background(), -4) {
		t.Fatalf("expected debug enabled")
	}
}
