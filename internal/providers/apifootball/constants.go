package apifootball

import "time"

const (
	providerName = "apifootball"

	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultHTTPTimeout = 10 * time.Second

	headerAPIKey         = "x-apisports-key"
	headerRetryAfter     = "Retry-After"
	headerDailyRemaining = "x-ratelimit-requests-remaining"

	teamsPath      = "/teams"
	statisticsPath = "/teams/statistics"

	maxErrorBody = 512
)
