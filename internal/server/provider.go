package server

import (
	"log/slog"

	"github.com/reyes-code/football-stats-service/internal/config"
	"github.com/reyes-code/football-stats-service/internal/providers"
	"github.com/reyes-code/football-stats-service/internal/providers/apifootball"
	"github.com/reyes-code/football-stats-service/internal/providers/fixture"
)

const (
	providerAPIFootball = "apifootball"
	providerFixture     = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch normalizeProviderName(cfg.Provider) {
	case providerAPIFootball:
		if cfg.APIFootball.APIKey == "" {
			if logger != nil {
				logger.Warn("API_FOOTBALL_KEY not set; upstream calls will likely be rejected")
			}
		}
		return apifootball.NewClient(apifootball.Config{
			BaseURL: cfg.APIFootball.BaseURL,
			APIKey:  cfg.APIFootball.APIKey,
			Timeout: cfg.APIFootball.Timeout,
			Logger:  logger,
		})
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
