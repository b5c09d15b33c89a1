package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMCPEnabled      = "MCP_ENABLED"
	envMCPPath         = "MCP_PATH"
	envAPIBaseURL      = "API_FOOTBALL_URL"
	envAPIKey          = "API_FOOTBALL_KEY"
	envAPILeague       = "API_FOOTBALL_LEAGUE"
	envAPISeason       = "API_FOOTBALL_SEASON"
	envAPITimeout      = "API_FOOTBALL_TIMEOUT"
	envAPIMinInterval  = "API_FOOTBALL_MIN_INTERVAL"
	defaultPort        = "4000"
	defaultProvider    = "apifootball"
	defaultMetricsPort = "9090"
	defaultServiceName = "football-stats-service"
	defaultMCPPath     = "/mcp"

	defaultAPIBaseURL = "https://v3.football.api-sports.io"
	// Primera A (Colombia) on API-Football.
	defaultLeagueID   = 239
	defaultSeason     = 2023
	defaultAPITimeout = 10 * time.Second
	// Zero disables request spacing; set it to stay under the plan's per-minute quota.
	defaultAPIMinInterval = time.Duration(0)
)
