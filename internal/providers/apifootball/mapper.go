package apifootball

import (
	"bytes"

	"github.com/reyes-code/football-stats-service/internal/domain/teams"
)

func mapTeams(entries []teamEntry) []teams.Team {
	out := make([]teams.Team, 0, len(entries))
	for _, e := range entries {
		out = append(out, mapTeam(e))
	}
	return out
}

func mapTeam(e teamEntry) teams.Team {
	t := teams.Team{
		ID:       e.Team.ID,
		Name:     e.Team.Name,
		Country:  e.Team.Country,
		Founded:  e.Team.Founded,
		National: e.Team.National,
		LogoURL:  e.Team.Logo,
		Venue:    mapVenue(e.Venue),
	}
	if e.Team.Code != nil {
		t.Code = *e.Team.Code
	}
	return t
}

func mapVenue(v *venueResponse) *teams.Venue {
	if v == nil || v.Name == nil || *v.Name == "" {
		return nil
	}
	venue := &teams.Venue{Name: *v.Name}
	if v.City != nil {
		venue.City = *v.City
	}
	if v.Capacity != nil {
		venue.Capacity = *v.Capacity
	}
	return venue
}

// isEmptyJSON reports whether raw is absent, null, [] or {}.
func isEmptyJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}

// isObject reports whether raw is a JSON object.
func isObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
