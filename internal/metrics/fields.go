package metrics

// Attribute keys shared by every instrument.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrScreen   = "screen"
	AttrOutcome  = "outcome"
)

// Screen names and load outcomes used with RecordScreenLoad.
const (
	ScreenTeams      = "teams"
	ScreenStatistics = "team_statistics"

	OutcomeLoaded = "loaded"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
)
