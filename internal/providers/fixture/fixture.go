package fixture

import (
	"context"
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
)

//go:embed statistics.json
var statisticsJSON []byte

// Provider serves a static Colombian roster and one sample statistics payload.
// It backs local development when no API key is available.
type Provider struct {
	teams []teams.Team
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{teams: roster()}
}

// FetchTeams returns the deterministic roster regardless of league or season.
func (p *Provider) FetchTeams(ctx context.Context, league, season int) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = league
	_ = season
	out := make([]teams.Team, len(p.teams))
	copy(out, p.teams)
	return out, nil
}

// FetchTeamStatistics returns the sample payload re-labelled for a roster team.
// Unknown ids get an empty payload, matching what upstream sends.
func (p *Provider) FetchTeamStatistics(ctx context.Context, league, season, teamID int) (*stats.TeamStatistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	team, ok := p.find(teamID)
	if !ok {
		return &stats.TeamStatistics{}, nil
	}

	ts := &stats.TeamStatistics{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(statisticsJSON, ts); err != nil {
		return nil, fmt.Errorf("fixture: decode statistics: %w", err)
	}
	if ts.League != nil {
		ts.League.ID = &league
		ts.League.Season = &season
	}
	id, name, logo := team.ID, team.Name, team.LogoURL
	ts.Team = &stats.TeamRef{ID: &id, Name: &name, Logo: &logo}
	return ts, nil
}

func (p *Provider) find(id int) (teams.Team, bool) {
	for _, t := range p.teams {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}

func roster() []teams.Team {
	year := func(y int) *int { return &y }
	logo := func(id int) string {
		return fmt.Sprintf("https://media.api-sports.io/football/teams/%d.png", id)
	}
	return []teams.Team{
		{ID: 1127, Name: "Millonarios", Code: "MIL", Country: "Colombia", Founded: year(1946), LogoURL: logo(1127),
			Venue: &teams.Venue{Name: "Estadio Nemesio Camacho", City: "Bogotá", Capacity: 36343}},
		{ID: 1135, Name: "Atlético Nacional", Code: "NAC", Country: "Colombia", Founded: year(1947), LogoURL: logo(1135),
			Venue: &teams.Venue{Name: "Estadio Atanasio Girardot", City: "Medellín", Capacity: 40043}},
		{ID: 1137, Name: "América de Cali", Code: "AME", Country: "Colombia", Founded: year(1927), LogoURL: logo(1137),
			Venue: &teams.Venue{Name: "Estadio Pascual Guerrero", City: "Cali", Capacity: 38588}},
		{ID: 1138, Name: "Deportivo Cali", Code: "CAL", Country: "Colombia", Founded: year(1912), LogoURL: logo(1138)},
		{ID: 1139, Name: "Junior", Code: "JUN", Country: "Colombia", Founded: year(1924), LogoURL: logo(1139),
			Venue: &teams.Venue{Name: "Estadio Metropolitano Roberto Meléndez", City: "Barranquilla", Capacity: 46692}},
		{ID: 1142, Name: "Independiente Santa Fe", Code: "SFE", Country: "Colombia", LogoURL: logo(1142)},
	}
}
