package viewmodel

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
)

// minuteBars keeps buckets with a positive count, ordered by their starting minute.
// Percentages come precomputed from upstream and default to "0%".
func minuteBars(buckets stats.MinuteBuckets) []MinuteBar {
	bars := make([]MinuteBar, 0, len(buckets))
	for key, b := range buckets {
		if b == nil {
			continue
		}
		count := intOr(b.Total)
		if count <= 0 {
			continue
		}
		bars = append(bars, MinuteBar{
			Bucket:     key,
			Count:      count,
			Percentage: stringOr(b.Percentage, ZeroPercent),
		})
	}
	sort.Slice(bars, func(i, j int) bool {
		return bucketLess(bars[i].Bucket, bars[j].Bucket)
	})
	return bars
}

func bucketLess(a, b string) bool {
	sa, okA := bucketStart(a)
	sb, okB := bucketStart(b)
	switch {
	case okA && okB && sa != sb:
		return sa < sb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

// bucketStart parses the leading minute of keys like "0-15" or "106-120".
func bucketStart(key string) (int, bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(key), "-")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return n, true
}
