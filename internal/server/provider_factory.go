package server

import (
	"log/slog"

	"github.com/reyes-code/football-stats-service/internal/config"
	"github.com/reyes-code/football-stats-service/internal/metrics"
	"github.com/reyes-code/football-stats-service/internal/providers"
)

// providerFactory assembles the provider with the shared wrappers (spacing + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap spaces calls by the configured min interval, then records every attempt.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.APIFootball.MinInterval, f.logger)
	return providers.NewInstrumentedProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider))
}
