package providers

import (
	"context"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
)

// TeamProvider fetches the roster of a league season in upstream order.
type TeamProvider interface {
	FetchTeams(ctx context.Context, league, season int) ([]teams.Team, error)
}

// StatisticsProvider fetches one team's season statistics.
// A nil result with a nil error is valid and means upstream sent no data.
type StatisticsProvider interface {
	FetchTeamStatistics(ctx context.Context, league, season, teamID int) (*stats.TeamStatistics, error)
}

// DataProvider combines both upstream capabilities.
type DataProvider interface {
	TeamProvider
	StatisticsProvider
}
