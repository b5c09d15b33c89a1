package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
)

// rateLimitedProvider spaces upstream calls at least interval apart.
// The first call passes immediately.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewRateLimitedProvider returns next unchanged when interval is not positive.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		return next
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context, league, season int) ([]teams.Team, error) {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx, league, season)
}

func (p *rateLimitedProvider) FetchTeamStatistics(ctx context.Context, league, season, teamID int) (*stats.TeamStatistics, error) {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeamStatistics(ctx, league, season, teamID)
}

// wait reserves the next slot and sleeps until it arrives or ctx ends.
func (p *rateLimitedProvider) wait(ctx context.Context) error {
	p.mu.Lock()
	now := p.now()
	slot := now
	if !p.last.IsZero() {
		if next := p.last.Add(p.interval); next.After(now) {
			slot = next
		}
	}
	p.last = slot
	p.mu.Unlock()

	delay := slot.Sub(now)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
