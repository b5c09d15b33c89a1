package web

import (
	"github.com/reyes-code/football-stats-service/internal/app/teams"
	"github.com/reyes-code/football-stats-service/internal/viewmodel"
)

// Brand and Attribution appear on every page.
const (
	Brand       = "Colombian Soccer Stats"
	Attribution = "Data provided by API-Football"
)

// TeamsPage is the team grid.
type TeamsPage struct {
	teams.Roster
}

// StatisticsPage is the loaded statistics dashboard.
type StatisticsPage struct {
	Dashboard viewmodel.Dashboard
}

// FailedPage is the error panel shown when statistics could not be loaded.
type FailedPage struct {
	Message   string
	RequestID string
}

type layoutData struct {
	Title   string
	Content any
}

type barsData struct {
	Bars  []viewmodel.MinuteBar
	Kind  string
	Empty string
}
