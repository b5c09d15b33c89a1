package testutil

import (
	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
)

// SampleTeam returns a minimal roster entry.
func SampleTeam(id int, name string) teams.Team {
	founded := 1946
	return teams.Team{
		ID:      id,
		Name:    name,
		Country: "Colombia",
		Founded: &founded,
		LogoURL: "https://media.example/teams/logo.png",
	}
}

// SampleRoster returns three teams in a fixed order.
func SampleRoster() []teams.Team {
	return []teams.Team{
		SampleTeam(1127, "Millonarios"),
		SampleTeam(1135, "Atlético Nacional"),
		SampleTeam(1137, "América de Cali"),
	}
}

// SampleStatistics returns a small but fully populated statistics payload:
// 10 played, 6 won, 25 scored, 10 conceded, form "WWDLWWDWLW".
func SampleStatistics(teamID int, name string) *stats.TeamStatistics {
	i := func(v int) *int { return &v }
	s := func(v string) *string { return &v }
	n := func(v string) *stats.NumericString { ns := stats.NumericString(v); return &ns }

	return &stats.TeamStatistics{
		League: &stats.League{ID: i(239), Name: s("Primera A"), Country: s("Colombia"), Season: i(2023)},
		Team:   &stats.TeamRef{ID: i(teamID), Name: s(name)},
		Form:   s("WWDLWWDWLW"),
		Fixtures: &stats.Fixtures{
			Played: &stats.Split{Home: i(5), Away: i(5), Total: i(10)},
			Wins:   &stats.Split{Home: i(4), Away: i(2), Total: i(6)},
			Draws:  &stats.Split{Home: i(1), Away: i(1), Total: i(2)},
			Loses:  &stats.Split{Home: i(0), Away: i(2), Total: i(2)},
		},
		Goals: &stats.Goals{
			For: &stats.GoalSide{
				Total:   &stats.Split{Home: i(15), Away: i(10), Total: i(25)},
				Average: &stats.AverageSplit{Total: n("2.5")},
				Minute: stats.MinuteBuckets{
					"0-15":  {Total: i(5), Percentage: s("20.00%")},
					"76-90": {Total: i(20), Percentage: s("80.00%")},
				},
			},
			Against: &stats.GoalSide{
				Total:   &stats.Split{Home: i(4), Away: i(6), Total: i(10)},
				Average: &stats.AverageSplit{Total: n("1.0")},
			},
		},
		CleanSheet: &stats.Split{Home: i(3), Away: i(1), Total: i(4)},
		Penalty: &stats.Penalty{
			Scored: &stats.PenaltyOutcome{Total: i(3), Percentage: s("75.00%")},
			Missed: &stats.PenaltyOutcome{Total: i(1), Percentage: s("25.00%")},
			Total:  i(4),
		},
		Lineups: []stats.Lineup{{Formation: s("4-3-3"), Played: i(10)}},
	}
}
