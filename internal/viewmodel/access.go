package viewmodel

import "github.com/reyes-code/football-stats-service/internal/domain/stats"

// Display defaults for absent values.
const (
	NotAvailable   = "N/A"
	ZeroAverage    = "0"
	UnknownLeague  = "Unknown league"
	UnknownCountry = "Unknown country"
	UnknownTeam    = "Unknown team"
)

// Accessors below are total: a nil link anywhere in the chain yields the default
// named in the doc comment instead of a panic.

func intOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func stringOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func splitOf(s *stats.Split) SplitCard {
	if s == nil {
		return SplitCard{}
	}
	return SplitCard{Home: intOr(s.Home), Away: intOr(s.Away), Total: intOr(s.Total)}
}

func fixtures(ts *stats.TeamStatistics) *stats.Fixtures {
	if ts == nil {
		return nil
	}
	return ts.Fixtures
}

func goalSide(ts *stats.TeamStatistics, against bool) *stats.GoalSide {
	if ts == nil || ts.Goals == nil {
		return nil
	}
	if against {
		return ts.Goals.Against
	}
	return ts.Goals.For
}

// FormString returns the raw form streak; default "".
func FormString(ts *stats.TeamStatistics) string {
	if ts == nil {
		return ""
	}
	return stringOr(ts.Form, "")
}

// FixturesPlayed returns fixtures.played.total; default 0.
func FixturesPlayed(ts *stats.TeamStatistics) int {
	if f := fixtures(ts); f != nil {
		return splitOf(f.Played).Total
	}
	return 0
}

// FixturesWins returns fixtures.wins.total; default 0.
func FixturesWins(ts *stats.TeamStatistics) int {
	if f := fixtures(ts); f != nil {
		return splitOf(f.Wins).Total
	}
	return 0
}

// FixturesDraws returns fixtures.draws.total; default 0.
func FixturesDraws(ts *stats.TeamStatistics) int {
	if f := fixtures(ts); f != nil {
		return splitOf(f.Draws).Total
	}
	return 0
}

// FixturesLosses returns fixtures.loses.total; default 0.
func FixturesLosses(ts *stats.TeamStatistics) int {
	if f := fixtures(ts); f != nil {
		return splitOf(f.Loses).Total
	}
	return 0
}

// GoalsFor returns goals.for.total.total; default 0.
func GoalsFor(ts *stats.TeamStatistics) int {
	if side := goalSide(ts, false); side != nil {
		return splitOf(side.Total).Total
	}
	return 0
}

// GoalsAgainst returns goals.against.total.total; default 0.
func GoalsAgainst(ts *stats.TeamStatistics) int {
	if side := goalSide(ts, true); side != nil {
		return splitOf(side.Total).Total
	}
	return 0
}

// GoalDifferential is GoalsFor minus GoalsAgainst, each defaulting to 0.
func GoalDifferential(ts *stats.TeamStatistics) int {
	return GoalsFor(ts) - GoalsAgainst(ts)
}

// GoalsForAverage returns goals.for.average.total; default "0".
func GoalsForAverage(ts *stats.TeamStatistics) string {
	return averageOf(goalSide(ts, false))
}

// GoalsAgainstAverage returns goals.against.average.total; default "0".
func GoalsAgainstAverage(ts *stats.TeamStatistics) string {
	return averageOf(goalSide(ts, true))
}

func averageOf(side *stats.GoalSide) string {
	if side == nil || side.Average == nil || side.Average.Total == nil || *side.Average.Total == "" {
		return ZeroAverage
	}
	return string(*side.Average.Total)
}

// CleanSheets returns clean_sheet home/away/total; each default 0.
func CleanSheets(ts *stats.TeamStatistics) SplitCard {
	if ts == nil {
		return SplitCard{}
	}
	return splitOf(ts.CleanSheet)
}

// FailedToScore returns failed_to_score home/away/total; each default 0.
func FailedToScore(ts *stats.TeamStatistics) SplitCard {
	if ts == nil {
		return SplitCard{}
	}
	return splitOf(ts.FailedToScore)
}

// Penalties returns scored/missed/total counts (default 0) and the upstream success
// rate string (default "0%").
func Penalties(ts *stats.TeamStatistics) PenaltyCard {
	card := PenaltyCard{SuccessRate: ZeroPercent}
	if ts == nil || ts.Penalty == nil {
		return card
	}
	p := ts.Penalty
	card.Total = intOr(p.Total)
	if p.Scored != nil {
		card.Scored = intOr(p.Scored.Total)
		card.SuccessRate = stringOr(p.Scored.Percentage, ZeroPercent)
	}
	if p.Missed != nil {
		card.Missed = intOr(p.Missed.Total)
	}
	return card
}

// Biggest returns extreme scorelines (default "N/A") and longest streaks (default 0).
func Biggest(ts *stats.TeamStatistics) BiggestResults {
	out := BiggestResults{
		WinHome:  NotAvailable,
		WinAway:  NotAvailable,
		LossHome: NotAvailable,
		LossAway: NotAvailable,
	}
	if ts == nil || ts.Biggest == nil {
		return out
	}
	b := ts.Biggest
	if b.Wins != nil {
		out.WinHome = stringOr(b.Wins.Home, NotAvailable)
		out.WinAway = stringOr(b.Wins.Away, NotAvailable)
	}
	if b.Loses != nil {
		out.LossHome = stringOr(b.Loses.Home, NotAvailable)
		out.LossAway = stringOr(b.Loses.Away, NotAvailable)
	}
	if b.Streak != nil {
		out.WinStreak = intOr(b.Streak.Wins)
		out.DrawStreak = intOr(b.Streak.Draws)
		out.LossStreak = intOr(b.Streak.Loses)
	}
	return out
}

// League returns the league identity; name/country fall back to Unknown labels and
// the season falls back to fallbackSeason.
func League(ts *stats.TeamStatistics, fallbackSeason int) LeagueHeader {
	out := LeagueHeader{Name: UnknownLeague, Country: UnknownCountry, Season: fallbackSeason}
	if ts == nil || ts.League == nil {
		return out
	}
	l := ts.League
	out.Name = stringOr(l.Name, UnknownLeague)
	out.Country = stringOr(l.Country, UnknownCountry)
	out.LogoURL = stringOr(l.Logo, "")
	if season := intOr(l.Season); season > 0 {
		out.Season = season
	}
	return out
}

// Team returns the team identity; name falls back to UnknownTeam.
func Team(ts *stats.TeamStatistics) TeamHeader {
	out := TeamHeader{Name: UnknownTeam}
	if ts == nil || ts.Team == nil {
		return out
	}
	out.ID = intOr(ts.Team.ID)
	out.Name = stringOr(ts.Team.Name, UnknownTeam)
	out.LogoURL = stringOr(ts.Team.Logo, "")
	return out
}

// Formations returns one row per lineup in upstream order; formation defaults to
// "N/A", played to 0, and the percentage is taken over FixturesPlayed.
func Formations(ts *stats.TeamStatistics) []FormationRow {
	rows := make([]FormationRow, 0)
	if ts == nil {
		return rows
	}
	played := FixturesPlayed(ts)
	for _, l := range ts.Lineups {
		count := intOr(l.Played)
		rows = append(rows, FormationRow{
			Formation:  stringOr(l.Formation, NotAvailable),
			Played:     count,
			Percentage: Percentage(count, played),
		})
	}
	return rows
}

// GoalsForByMinute returns non-empty goals.for.minute buckets in minute order.
func GoalsForByMinute(ts *stats.TeamStatistics) []MinuteBar {
	if side := goalSide(ts, false); side != nil {
		return minuteBars(side.Minute)
	}
	return []MinuteBar{}
}

// GoalsAgainstByMinute returns non-empty goals.against.minute buckets in minute order.
func GoalsAgainstByMinute(ts *stats.TeamStatistics) []MinuteBar {
	if side := goalSide(ts, true); side != nil {
		return minuteBars(side.Minute)
	}
	return []MinuteBar{}
}

// YellowCards returns non-empty cards.yellow buckets in minute order.
func YellowCards(ts *stats.TeamStatistics) []MinuteBar {
	if ts == nil || ts.Cards == nil {
		return []MinuteBar{}
	}
	return minuteBars(ts.Cards.Yellow)
}

// RedCards returns non-empty cards.red buckets in minute order.
func RedCards(ts *stats.TeamStatistics) []MinuteBar {
	if ts == nil || ts.Cards == nil {
		return []MinuteBar{}
	}
	return minuteBars(ts.Cards.Red)
}
