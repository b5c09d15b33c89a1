// Package stats models the season statistics payload for a single team.
//
// Every field is optional upstream: objects may be missing, null, or partially
// populated at any depth. Pointers and maps keep that absence visible so the
// view-model layer can apply its documented defaults.
package stats

// TeamStatistics is the raw per-team season statistics payload.
type TeamStatistics struct {
	League        *League   `json:"league,omitempty"`
	Team          *TeamRef  `json:"team,omitempty"`
	Form          *string   `json:"form,omitempty"`
	Fixtures      *Fixtures `json:"fixtures,omitempty"`
	Goals         *Goals    `json:"goals,omitempty"`
	Biggest       *Biggest  `json:"biggest,omitempty"`
	CleanSheet    *Split    `json:"clean_sheet,omitempty"`
	FailedToScore *Split    `json:"failed_to_score,omitempty"`
	Penalty       *Penalty  `json:"penalty,omitempty"`
	Lineups       []Lineup  `json:"lineups,omitempty"`
	Cards         *Cards    `json:"cards,omitempty"`
}

type League struct {
	ID      *int    `json:"id,omitempty"`
	Name    *string `json:"name,omitempty"`
	Country *string `json:"country,omitempty"`
	Logo    *string `json:"logo,omitempty"`
	Flag    *string `json:"flag,omitempty"`
	Season  *int    `json:"season,omitempty"`
}

type TeamRef struct {
	ID   *int    `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Logo *string `json:"logo,omitempty"`
}

// Split is a home/away/total count.
type Split struct {
	Home  *int `json:"home,omitempty"`
	Away  *int `json:"away,omitempty"`
	Total *int `json:"total,omitempty"`
}

// Fixtures aggregates match counts. "loses" is the upstream spelling.
type Fixtures struct {
	Played *Split `json:"played,omitempty"`
	Wins   *Split `json:"wins,omitempty"`
	Draws  *Split `json:"draws,omitempty"`
	Loses  *Split `json:"loses,omitempty"`
}

type Goals struct {
	For     *GoalSide `json:"for,omitempty"`
	Against *GoalSide `json:"against,omitempty"`
}

type GoalSide struct {
	Total   *Split        `json:"total,omitempty"`
	Average *AverageSplit `json:"average,omitempty"`
	Minute  MinuteBuckets `json:"minute,omitempty"`
}

// AverageSplit holds per-match averages, which upstream sends as strings ("1.4").
type AverageSplit struct {
	Home  *NumericString `json:"home,omitempty"`
	Away  *NumericString `json:"away,omitempty"`
	Total *NumericString `json:"total,omitempty"`
}

// MinuteBuckets maps a minute range ("0-15", "16-30", ...) to its counts.
type MinuteBuckets map[string]*BucketStat

type BucketStat struct {
	Total      *int    `json:"total,omitempty"`
	Percentage *string `json:"percentage,omitempty"`
}

type Biggest struct {
	Streak *Streak       `json:"streak,omitempty"`
	Wins   *ScoreSplit   `json:"wins,omitempty"`
	Loses  *ScoreSplit   `json:"loses,omitempty"`
	Goals  *BiggestGoals `json:"goals,omitempty"`
}

type Streak struct {
	Wins  *int `json:"wins,omitempty"`
	Draws *int `json:"draws,omitempty"`
	Loses *int `json:"loses,omitempty"`
}

// ScoreSplit holds scorelines such as "4-0".
type ScoreSplit struct {
	Home *string `json:"home,omitempty"`
	Away *string `json:"away,omitempty"`
}

type BiggestGoals struct {
	For     *Split `json:"for,omitempty"`
	Against *Split `json:"against,omitempty"`
}

type Penalty struct {
	Scored *PenaltyOutcome `json:"scored,omitempty"`
	Missed *PenaltyOutcome `json:"missed,omitempty"`
	Total  *int            `json:"total,omitempty"`
}

type PenaltyOutcome struct {
	Total      *int    `json:"total,omitempty"`
	Percentage *string `json:"percentage,omitempty"`
}

type Lineup struct {
	Formation *string `json:"formation,omitempty"`
	Played    *int    `json:"played,omitempty"`
}

type Cards struct {
	Yellow MinuteBuckets `json:"yellow,omitempty"`
	Red    MinuteBuckets `json:"red,omitempty"`
}
