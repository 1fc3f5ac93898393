package server

import (
	"log/slog"

	"github.com/namousaymane/KooraGoal/internal/config"
	"github.com/namousaymane/KooraGoal/internal/metrics"
	"github.com/namousaymane/KooraGoal/internal/providers"
)

// providerFactory assembles the upstream fetcher with the shared rate-limit cooldown.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.Fetcher {
	return f.wrap(selectProvider(cfg, f.logger, f.metrics))
}

// wrap applies the cooldown to any fetcher, including injected ones.
func (f providerFactory) wrap(base providers.Fetcher) providers.Fetcher {
	return providers.NewCooldownFetcher(base, f.logger, f.metrics)
}
