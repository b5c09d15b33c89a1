package teams

import (
	"context"
	"log/slog"
	"time"

	"github.com/reyes-code/football-stats-service/internal/domain/teams"
	"github.com/reyes-code/football-stats-service/internal/logging"
	"github.com/reyes-code/football-stats-service/internal/metrics"
	"github.com/reyes-code/football-stats-service/internal/providers"
)

// Roster is the team grid's data: the configured league season and its teams.
type Roster struct {
	League int          `json:"league"`
	Season int          `json:"season"`
	Teams  []teams.Team `json:"teams"`
}

// Loader fetches the roster for a fixed league and season.
type Loader struct {
	provider providers.TeamProvider
	league   int
	season   int
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewLoader constructs a Loader. logger and recorder may be nil.
func NewLoader(provider providers.TeamProvider, league, season int, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		provider: provider,
		league:   league,
		season:   season,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Load issues one upstream request. Failures are logged and degrade to an empty,
// non-nil team list; they are never returned to the caller.
func (l *Loader) Load(ctx context.Context) Roster {
	roster := Roster{League: l.league, Season: l.season, Teams: []teams.Team{}}
	start := l.now()
	logger := logging.FromContext(ctx, l.logger)

	if l.provider == nil {
		logging.Error(logger, "roster fetch failed", providers.ErrProviderUnavailable)
		l.recorder.RecordScreenLoad(metrics.ScreenTeams, metrics.OutcomeFailed, l.now().Sub(start))
		return roster
	}

	list, err := l.provider.FetchTeams(ctx, l.league, l.season)
	if err != nil {
		logging.Error(logger, "roster fetch failed", err,
			slog.Int(logging.FieldLeague, l.league),
			slog.Int(logging.FieldSeason, l.season),
		)
		l.recorder.RecordScreenLoad(metrics.ScreenTeams, metrics.OutcomeFailed, l.now().Sub(start))
		return roster
	}

	if list != nil {
		roster.Teams = list
	}
	outcome := metrics.OutcomeLoaded
	if len(roster.Teams) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	l.recorder.RecordScreenLoad(metrics.ScreenTeams, outcome, l.now().Sub(start))
	return roster
}
