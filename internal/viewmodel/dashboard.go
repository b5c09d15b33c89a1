package viewmodel

import "github.com/reyes-code/football-stats-service/internal/domain/stats"

// Dashboard is everything the statistics screen renders, fully defaulted.
type Dashboard struct {
	League               LeagueHeader   `json:"league"`
	Team                 TeamHeader     `json:"team"`
	Form                 []FormBadge    `json:"form"`
	Fixtures             FixturesCard   `json:"fixtures"`
	Goals                GoalsCard      `json:"goals"`
	CleanSheets          SplitCard      `json:"cleanSheets"`
	FailedToScore        SplitCard      `json:"failedToScore"`
	Penalties            PenaltyCard    `json:"penalties"`
	GoalsForByMinute     []MinuteBar    `json:"goalsForByMinute"`
	GoalsAgainstByMinute []MinuteBar    `json:"goalsAgainstByMinute"`
	Formations           []FormationRow `json:"formations"`
	YellowCards          []MinuteBar    `json:"yellowCards"`
	RedCards             []MinuteBar    `json:"redCards"`
	Biggest              BiggestResults `json:"biggest"`
}

type LeagueHeader struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	LogoURL string `json:"logoUrl,omitempty"`
	Season  int    `json:"season"`
}

type TeamHeader struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type FixturesCard struct {
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	WinPercentage string `json:"winPercentage"`
}

type GoalsCard struct {
	For            int    `json:"for"`
	Against        int    `json:"against"`
	Differential   int    `json:"differential"`
	AverageFor     string `json:"averageFor"`
	AverageAgainst string `json:"averageAgainst"`
}

type SplitCard struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Total int `json:"total"`
}

type PenaltyCard struct {
	Scored      int    `json:"scored"`
	Missed      int    `json:"missed"`
	Total       int    `json:"total"`
	SuccessRate string `json:"successRate"`
}

// MinuteBar is one non-empty minute bucket.
type MinuteBar struct {
	Bucket     string `json:"bucket"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

type FormationRow struct {
	Formation  string `json:"formation"`
	Played     int    `json:"played"`
	Percentage string `json:"percentage"`
}

type BiggestResults struct {
	WinHome    string `json:"winHome"`
	WinAway    string `json:"winAway"`
	LossHome   string `json:"lossHome"`
	LossAway   string `json:"lossAway"`
	WinStreak  int    `json:"winStreak"`
	DrawStreak int    `json:"drawStreak"`
	LossStreak int    `json:"lossStreak"`
}

// Build derives the dashboard from a raw payload. A nil payload is valid and yields
// an all-default dashboard; fallbackSeason is shown when the payload has no season.
func Build(ts *stats.TeamStatistics, fallbackSeason int) Dashboard {
	played := FixturesPlayed(ts)
	wins := FixturesWins(ts)

	return Dashboard{
		League: League(ts, fallbackSeason),
		Team:   Team(ts),
		Form:   RecentForm(FormString(ts)),
		Fixtures: FixturesCard{
			Played:        played,
			Wins:          wins,
			Draws:         FixturesDraws(ts),
			Losses:        FixturesLosses(ts),
			WinPercentage: Percentage(wins, played),
		},
		Goals: GoalsCard{
			For:            GoalsFor(ts),
			Against:        GoalsAgainst(ts),
			Differential:   GoalDifferential(ts),
			AverageFor:     GoalsForAverage(ts),
			AverageAgainst: GoalsAgainstAverage(ts),
		},
		CleanSheets:          CleanSheets(ts),
		FailedToScore:        FailedToScore(ts),
		Penalties:            Penalties(ts),
		GoalsForByMinute:     GoalsForByMinute(ts),
		GoalsAgainstByMinute: GoalsAgainstByMinute(ts),
		Formations:           Formations(ts),
		YellowCards:          YellowCards(ts),
		RedCards:             RedCards(ts),
		Biggest:              Biggest(ts),
	}
}
