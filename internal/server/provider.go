package server

import (
	"log/slog"

	"github.com/namousaymane/KooraGoal/internal/config"
	"github.com/namousaymane/KooraGoal/internal/logging"
	"github.com/namousaymane/KooraGoal/internal/metrics"
	"github.com/namousaymane/KooraGoal/internal/providers"
	"github.com/namousaymane/KooraGoal/internal/providers/apifootball"
	"github.com/namousaymane/KooraGoal/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.Fetcher {
	switch cfg.ProviderName() {
	case config.ProviderAPIFootball:
		if cfg.Football.APIKey == "" {
			logging.Warn(logger, "api-football selected without FOOTBALL_API_KEY; requests will be rejected upstream")
		}
		return apifootball.NewClient(apifootball.Config{
			BaseURL:  cfg.Football.BaseURL,
			APIKey:   cfg.Football.APIKey,
			APIHost:  cfg.Football.APIHost,
			Timeout:  cfg.Football.Timeout,
			Logger:   logger,
			Recorder: recorder,
		})
	default:
		return fixture.New()
	}
}
