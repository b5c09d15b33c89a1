package config

import "time"

// APIFootballConfig controls how we talk to the API-Football service.
type APIFootballConfig struct {
	BaseURL     string
	APIKey      string
	LeagueID    int
	Season      int
	Timeout     time.Duration
	MinInterval time.Duration
}

func loadAPIFootball() APIFootballConfig {
	return APIFootballConfig{
		BaseURL:     envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		APIKey:      envOrDefault(envAPIKey, ""),
		LeagueID:    intEnvOrDefault(envAPILeague, defaultLeagueID),
		Season:      intEnvOrDefault(envAPISeason, defaultSeason),
		Timeout:     durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
		MinInterval: durationEnvOrDefault(envAPIMinInterval, defaultAPIMinInterval),
	}
}
