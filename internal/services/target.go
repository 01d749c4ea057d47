package services

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTargetScore is the improvement target shown before one is set.
const DefaultTargetScore = 18.0

// ClampTarget bounds a target score to the valid [0,24] range.
func ClampTarget(v float64) float64 {
	return math.Max(0, math.Min(24, v))
}

// ParseTargetScore validates raw user input for the target-score control.
// Non-numeric or non-finite input is rejected (ok=false) so the caller keeps
// the prior value; valid input is clamped to [0,24].
func ParseTargetScore(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return ClampTarget(v), true
}

// NormalizeStoredTarget interprets a persisted target value. Blank or
// malformed stored content falls back to the default.
func NormalizeStoredTarget(raw string) float64 {
	v, ok := ParseTargetScore(raw)
	if !ok {
		return DefaultTargetScore
	}
	return v
}
