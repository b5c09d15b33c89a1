package fixture

import (
	"context"
	"errors"
	"testing"
)

func TestFetchTeamsReturnsDeterministicRoster(t *testing.T) {
	p := New()

	list, err := p.FetchTeams(context.Background(), 239, 2023)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("expected 6 teams, got %d", len(list))
	}
	if list[0].ID != 1127 || list[0].Name != "Millonarios" {
		t.Fatalf("unexpected first team %+v", list[0])
	}
	if list[5].Founded != nil {
		t.Fatalf("expected last team without founding year")
	}

	list[0].Name = "mutated"
	again, _ := p.FetchTeams(context.Background(), 239, 2023)
	if again[0].Name != "Millonarios" {
		t.Fatalf("expected roster copies, caller mutation leaked")
	}
}

func TestFetchTeamStatisticsForKnownTeam(t *testing.T) {
	ts, err := New().FetchTeamStatistics(context.Background(), 239, 2024, 1135)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ts.Team == nil || *ts.Team.ID != 1135 || *ts.Team.Name != "Atlético Nacional" {
		t.Fatalf("unexpected team %+v", ts.Team)
	}
	if ts.League == nil || *ts.League.Season != 2024 {
		t.Fatalf("expected requested season, got %+v", ts.League)
	}
	if ts.Fixtures == nil || *ts.Fixtures.Played.Total != 20 {
		t.Fatalf("expected sample fixtures")
	}
	if len(ts.Lineups) != 3 {
		t.Fatalf("expected 3 lineups, got %d", len(ts.Lineups))
	}
}

func TestFetchTeamStatisticsUnknownTeamIsEmpty(t *testing.T) {
	ts, err := New().FetchTeamStatistics(context.Background(), 239, 2023, 42)
	if err != nil || ts == nil || ts.Team != nil || ts.Goals != nil {
		t.Fatalf("expected empty payload, got %+v %v", ts, err)
	}
}

func TestFixtureHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchTeams(ctx, 239, 2023); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
