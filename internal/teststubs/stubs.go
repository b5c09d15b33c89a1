package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Teams []teams.Team
	Stats *stats.TeamStatistics
	Err   error
	Calls atomic.Int32

	// Block, when set, holds every call until it is closed or ctx ends.
	Block chan struct{}

	mu       sync.Mutex
	lastTeam int
}

// FetchTeams returns the configured roster and error while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context, league, season int) ([]teams.Team, error) {
	_ = league
	_ = season
	s.Calls.Add(1)
	if err := s.hold(ctx); err != nil {
		return nil, err
	}
	return s.Teams, s.Err
}

// FetchTeamStatistics returns the configured payload and error while tracking calls.
func (s *StubProvider) FetchTeamStatistics(ctx context.Context, league, season, teamID int) (*stats.TeamStatistics, error) {
	_ = league
	_ = season
	s.Calls.Add(1)
	s.mu.Lock()
	s.lastTeam = teamID
	s.mu.Unlock()
	if err := s.hold(ctx); err != nil {
		return nil, err
	}
	return s.Stats, s.Err
}

// LastTeamID reports the team id of the most recent statistics call.
func (s *StubProvider) LastTeamID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTeam
}

func (s *StubProvider) hold(ctx context.Context) error {
	if s.Block == nil {
		return nil
	}
	select {
	case <-s.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
