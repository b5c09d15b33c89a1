package viewmodel

import (
	"math"
	"strconv"
)

// ZeroPercent is the display value for any percentage without a usable denominator.
const ZeroPercent = "0%"

// Percentage renders part/total as a whole-number percentage ("33%").
// A zero total short-circuits to ZeroPercent.
func Percentage(part, total int) string {
	if total == 0 {
		return ZeroPercent
	}
	pct := math.Round(float64(part) / float64(total) * 100)
	return strconv.Itoa(int(pct)) + "%"
}
