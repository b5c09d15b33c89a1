package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
	"github.com/reyes-code/football-stats-service/internal/logging"
	"github.com/reyes-code/football-stats-service/internal/metrics"
)

// instrumentedProvider records every upstream call. It never retries: one screen
// load is one upstream request.
type instrumentedProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with latency/error metrics and call logging.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "unknown"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		recorder:     recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context, league, season int) ([]teams.Team, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	list, err := p.inner.FetchTeams(ctx, league, season)
	p.observe(ctx, "fetch teams", start, err,
		slog.Int(logging.FieldLeague, league),
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(list)),
	)
	return list, err
}

func (p *instrumentedProvider) FetchTeamStatistics(ctx context.Context, league, season, teamID int) (*stats.TeamStatistics, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	ts, err := p.inner.FetchTeamStatistics(ctx, league, season, teamID)
	p.observe(ctx, "fetch team statistics", start, err,
		slog.Int(logging.FieldLeague, league),
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldTeamID, teamID),
	)
	return ts, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	duration := p.now().Sub(start)
	p.recorder.RecordProviderAttempt(p.providerName, duration, err)

	attrs = append(attrs, slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
	if err == nil {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, op, attrs...)
		return
	}

	if rlErr, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(p.providerName, rlErr.RetryAfter)
		attrs = append(attrs, slog.Duration(logging.FieldRetryAfter, rlErr.RetryAfter))
	}
	attrs = append(attrs, slog.Any(logging.FieldError, err))
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, op+" failed", attrs...)
}
