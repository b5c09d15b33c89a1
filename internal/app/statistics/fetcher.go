package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/reyes-code/football-stats-service/internal/logging"
	"github.com/reyes-code/football-stats-service/internal/metrics"
	"github.com/reyes-code/football-stats-service/internal/providers"
)

// Fetcher starts statistics loads for a fixed league and season.
type Fetcher struct {
	provider providers.StatisticsProvider
	league   int
	season   int
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewFetcher constructs a Fetcher. logger and recorder may be nil.
func NewFetcher(provider providers.StatisticsProvider, league, season int, logger *slog.Logger, recorder *metrics.Recorder) *Fetcher {
	return &Fetcher{
		provider: provider,
		league:   league,
		season:   season,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Season is the configured season, used as a display fallback.
func (f *Fetcher) Season() int {
	return f.season
}

// League is the configured league id.
func (f *Fetcher) League() int {
	return f.league
}

// ParseTeamID validates a route parameter. Empty input is ErrMissingTeam; anything
// but a positive integer is ErrInvalidTeam.
func ParseTeamID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingTeam
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTeam, raw)
	}
	return id, nil
}

// Start begins loading rawTeamID. A missing or invalid id yields an already
// failed task and no upstream call. Otherwise one request runs on its own
// goroutine, bound to ctx.
func (f *Fetcher) Start(ctx context.Context, rawTeamID string) *Task {
	start := f.now()
	logger := logging.FromContext(ctx, f.logger)

	teamID, err := ParseTeamID(rawTeamID)
	if err != nil {
		logging.Warn(logger, "statistics request rejected", slog.String("team", rawTeamID), slog.Any(logging.FieldError, err))
		f.recorder.RecordScreenLoad(metrics.ScreenStatistics, metrics.OutcomeFailed, f.now().Sub(start))
		return completedTask(failed(0, err))
	}
	if f.provider == nil {
		logging.Error(logger, "statistics fetch failed", providers.ErrProviderUnavailable, slog.Int(logging.FieldTeamID, teamID))
		f.recorder.RecordScreenLoad(metrics.ScreenStatistics, metrics.OutcomeFailed, f.now().Sub(start))
		return completedTask(failed(teamID, providers.ErrProviderUnavailable))
	}

	taskCtx, cancel := context.WithCancel(ctx)
	task := newTask(teamID, cancel)
	go func() {
		defer cancel()
		ts, err := f.provider.FetchTeamStatistics(taskCtx, f.league, f.season, teamID)
		if err != nil {
			logging.Error(logger, "statistics fetch failed", err,
				slog.Int(logging.FieldLeague, f.league),
				slog.Int(logging.FieldSeason, f.season),
				slog.Int(logging.FieldTeamID, teamID),
			)
			f.recorder.RecordScreenLoad(metrics.ScreenStatistics, metrics.OutcomeFailed, f.now().Sub(start))
			task.finish(failed(teamID, err))
			return
		}
		f.recorder.RecordScreenLoad(metrics.ScreenStatistics, metrics.OutcomeLoaded, f.now().Sub(start))
		task.finish(loaded(teamID, ts))
	}()
	return task
}

// Fetch starts a task and waits for it with ctx. If ctx ends first the returned
// state is Failed with the context error.
func (f *Fetcher) Fetch(ctx context.Context, rawTeamID string) State {
	task := f.Start(ctx, rawTeamID)
	s, err := task.Wait(ctx)
	if err != nil {
		return failed(s.TeamID, err)
	}
	return s
}
