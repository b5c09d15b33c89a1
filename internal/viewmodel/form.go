package viewmodel

// MaxFormBadges is how many form results the dashboard shows ("last 10 matches").
const MaxFormBadges = 10

// OutcomeKind classifies one character of a form streak.
type OutcomeKind string

const (
	OutcomeWin     OutcomeKind = "win"
	OutcomeDraw    OutcomeKind = "draw"
	OutcomeLoss    OutcomeKind = "loss"
	OutcomeUnknown OutcomeKind = "unknown"
)

// FormBadge is the display form of one match outcome.
type FormBadge struct {
	Char  string      `json:"char"`
	Kind  OutcomeKind `json:"kind"`
	Label string      `json:"label"`
}

// DecodeForm maps every character of a form string to a badge, keeping input order.
// W, D and L are recognised; anything else is OutcomeUnknown. Empty input yields an
// empty, non-nil slice.
func DecodeForm(form string) []FormBadge {
	badges := make([]FormBadge, 0, len(form))
	for _, r := range form {
		kind, label := decodeOutcome(r)
		badges = append(badges, FormBadge{Char: string(r), Kind: kind, Label: label})
	}
	return badges
}

// RecentForm decodes form and keeps at most the first MaxFormBadges entries.
// Ordering is the upstream ordering; nothing is reversed.
func RecentForm(form string) []FormBadge {
	badges := DecodeForm(form)
	if len(badges) > MaxFormBadges {
		badges = badges[:MaxFormBadges]
	}
	return badges
}

func decodeOutcome(r rune) (OutcomeKind, string) {
	switch r {
	case 'W':
		return OutcomeWin, "Win"
	case 'D':
		return OutcomeDraw, "Draw"
	case 'L':
		return OutcomeLoss, "Loss"
	default:
		return OutcomeUnknown, "Unknown"
	}
}
