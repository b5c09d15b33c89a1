package statistics

import (
	"errors"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
)

// Phase is where a statistics load currently stands.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseFailed  Phase = "failed"
)

var (
	// ErrMissingTeam means the route carried no team identifier.
	ErrMissingTeam = errors.New("no team specified")
	// ErrInvalidTeam means the team identifier is not a positive integer.
	ErrInvalidTeam = errors.New("invalid team id")
)

// Viewer-facing failure messages. Details stay in the logs.
const (
	MessageMissingTeam = "No team was specified in the URL."
	MessageInvalidTeam = "The team id in the URL is not valid."
	MessageLoadFailed  = "Could not load statistics for this team. Please try again later."
)

// State is one snapshot of the Loading → Loaded | Failed machine.
// Stats is set only when Loaded; Message and Err only when Failed.
type State struct {
	Phase   Phase
	TeamID  int
	Stats   *stats.TeamStatistics
	Message string
	Err     error
}

func loading(teamID int) State {
	return State{Phase: PhaseLoading, TeamID: teamID}
}

func loaded(teamID int, ts *stats.TeamStatistics) State {
	if ts == nil {
		ts = &stats.TeamStatistics{}
	}
	return State{Phase: PhaseLoaded, TeamID: teamID, Stats: ts}
}

func failed(teamID int, err error) State {
	msg := MessageLoadFailed
	switch {
	case errors.Is(err, ErrMissingTeam):
		msg = MessageMissingTeam
	case errors.Is(err, ErrInvalidTeam):
		msg = MessageInvalidTeam
	}
	return State{Phase: PhaseFailed, TeamID: teamID, Message: msg, Err: err}
}

// Terminal reports whether the state can no longer change.
func (s State) Terminal() bool {
	return s.Phase == PhaseLoaded || s.Phase == PhaseFailed
}
