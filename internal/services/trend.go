package services

import (
	"math"
	"sort"
)

// sparkLevels is the fixed 10-level, ASCII-only trend alphabet.
const sparkLevels = " .:-=+*#%@"

// ChronologicalSnapshots returns the subject's history oldest first.
// Unparsable timestamps sort before parsable ones; when neither side parses,
// the raw strings are compared lexicographically, matching the
// latest-per-subject reduction.
func ChronologicalSnapshots(log []Snapshot, token string) []Snapshot {
	tokenLabel := tokenOrDefault(token)

	filtered := []Snapshot{}
	for _, s := range log {
		if tokenOrDefault(s.Token) == tokenLabel {
			filtered = append(filtered, s)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		at, aok := parseTimestamp(filtered[i].TimestampISO)
		bt, bok := parseTimestamp(filtered[j].TimestampISO)
		switch {
		case !aok && !bok:
			return filtered[i].TimestampISO < filtered[j].TimestampISO
		case !aok:
			return true
		case !bok:
			return false
		default:
			return at.Before(bt)
		}
	})
	return filtered
}

// Sparkline maps each value linearly from the observed [min,max] onto the
// 10-level alphabet. A flat series renders as the middle level throughout.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return ""
	}

	levels := []rune(sparkLevels)
	out := make([]rune, len(values))

	if min == max {
		mid := (len(levels) - 1) / 2
		for i := range values {
			out[i] = levels[mid]
		}
		return string(out)
	}

	scale := float64(len(levels)-1) / (max - min)
	for i, v := range values {
		n := int(math.Round((v - min) * scale))
		if n < 0 {
			n = 0
		}
		if n > len(levels)-1 {
			n = len(levels) - 1
		}
		out[i] = levels[n]
	}
	return string(out)
}

// TrendValues extracts the score trajectory from an already-ordered history.
func TrendValues(history []Snapshot) []float64 {
	values := make([]float64, 0, len(history))
	for _, s := range history {
		values = append(values, s.TotalScore24)
	}
	return values
}
