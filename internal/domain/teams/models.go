package teams

import "strconv"

// Team is one roster entry of the configured league season.
// Optional upstream values are pointers so absence survives into rendering.
type Team struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Country  string `json:"country"`
	Founded  *int   `json:"founded,omitempty"`
	National bool   `json:"national"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Venue    *Venue `json:"venue,omitempty"`
}

// Venue is the home ground reported alongside a roster entry.
type Venue struct {
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

// FoundedLabel returns the founding year, or fallback when unknown.
func (t Team) FoundedLabel(fallback string) string {
	if t.Founded == nil || *t.Founded <= 0 {
		return fallback
	}
	return strconv.Itoa(*t.Founded)
}
