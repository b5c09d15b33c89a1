package config

import "strings"

// HTTPConfig controls the optional HTTP surfaces next to the HTML screens.
type HTTPConfig struct {
	AllowedOrigins []string
	MCPEnabled     bool
	MCPPath        string
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		MCPEnabled:     boolEnvOrDefault(envMCPEnabled, true),
		MCPPath:        normalizePath(envOrDefault(envMCPPath, defaultMCPPath)),
	}
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultMCPPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
