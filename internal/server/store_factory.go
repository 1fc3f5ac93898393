package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/namousaymane/KooraGoal/internal/config"
	"github.com/namousaymane/KooraGoal/internal/kvstore"
	"github.com/namousaymane/KooraGoal/internal/logging"
)

var openStore = kvstore.Open

func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (kvstore.Store, func() error, error) {
	store, closeFn, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	logging.Info(logger, "cache store ready",
		slog.String(logging.FieldStore, cfg.Store.Driver),
		slog.String("path", cfg.Store.Path),
	)
	return store, closeFn, nil
}
