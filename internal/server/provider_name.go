package server

import "strings"

// normalizeProviderName lower-cases the configured name; empty means API-Football.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerAPIFootball
	}
	return name
}
