package services

import (
	"encoding/json"
	"math"
	"strings"
)

// The snapshot codec turns arbitrary decoded JSON into well-formed Snapshot
// records. The persisted log may contain entries written by older builds or
// truncated writes, so every field falls back to a safe default instead of
// failing. A record that leaves the codec always satisfies the Snapshot
// contract even when its input did not.

const isoFormat = "2006-01-02T15:04:05.000Z07:00"

func isoNow() string {
	return nowFunc().UTC().Format(isoFormat)
}

func asRecord(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func readString(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func readNumber(v any, fallback float64) float64 {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

func normalizeScore(v any) (Score, bool) {
	switch val := v.(type) {
	case string:
		if val == "NA" {
			return ScoreNA, true
		}
	case float64:
		if val == 0 || val == 1 || val == 2 || val == 3 {
			return Score(int(val)), true
		}
	}
	return 0, false
}

// NormalizeAnswers validates a decoded answers mapping. Values other than
// 0..3 or "NA" are dropped along with their keys.
func NormalizeAnswers(v any) AnswerSet {
	out := AnswerSet{}
	m, ok := asRecord(v)
	if !ok {
		return out
	}
	for key, raw := range m {
		if score, ok := normalizeScore(raw); ok {
			out[key] = score
		}
	}
	return out
}

func normalizePillarNotes(v any) map[string]string {
	out := map[string]string{}
	m, ok := asRecord(v)
	if !ok {
		return out
	}
	for key, raw := range m {
		if s, ok := raw.(string); ok {
			out[key] = s
		}
	}
	return out
}

func normalizePillarAverages(v any) []PillarAverage {
	arr, ok := v.([]any)
	if !ok {
		return []PillarAverage{}
	}
	out := make([]PillarAverage, 0, len(arr))
	for _, item := range arr {
		m, ok := asRecord(item)
		if !ok {
			continue
		}
		out = append(out, PillarAverage{
			PillarCode:    readString(m["pillarCode"], ""),
			PillarName:    readString(m["pillarName"], ""),
			AverageScore:  readNumber(m["averageScore"], 0),
			AnsweredCount: int(readNumber(m["answeredCount"], 0)),
			QuestionCount: int(readNumber(m["questionCount"], 0)),
		})
	}
	return out
}

// NormalizeSnapshot validates a decoded JSON value into a Snapshot. It never
// fails on malformed fields; only a non-object input is rejected outright.
func NormalizeSnapshot(value any) (Snapshot, bool) {
	m, ok := asRecord(value)
	if !ok {
		return Snapshot{}, false
	}

	token := strings.TrimSpace(readString(m["token"], ""))
	if token == "" {
		token = DefaultToken
	}

	timestamp := strings.TrimSpace(readString(m["timestampISO"], ""))
	if timestamp == "" {
		timestamp = isoNow()
	}

	return Snapshot{
		Token:            token,
		OrganisationName: readString(m["organisationName"], ""),
		Country:          readString(m["country"], ""),
		ContactEmail:     readString(m["contactEmail"], ""),
		TimestampISO:     timestamp,
		TotalScore24:     readNumber(m["totalScore24"], 0),
		Band:             readString(m["band"], ""),
		PillarAverages:   normalizePillarAverages(m["pillarAverages"]),
		PillarNotes:      normalizePillarNotes(m["pillarNotes"]),
		RawAnswers:       NormalizeAnswers(m["rawAnswers"]),
	}, true
}

// NormalizeLog decodes persisted log content into validated snapshots.
// Unparsable or non-array content yields an empty log, never an error.
func NormalizeLog(raw []byte) []Snapshot {
	out := []Snapshot{}
	if len(raw) == 0 {
		return out
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return out
	}
	arr, ok := decoded.([]any)
	if !ok {
		return out
	}
	for _, item := range arr {
		if snap, ok := NormalizeSnapshot(item); ok {
			out = append(out, snap)
		}
	}
	return out
}

// MigrateLegacyLog reshapes records from the old persisted format (profile
// sub-object, "timestamp", "totalScoreOutOf24", "maturityBand", "answers")
// into current snapshots. Malformed records are skipped, not fatal.
func MigrateLegacyLog(raw []byte) []Snapshot {
	out := []Snapshot{}
	if len(raw) == 0 {
		return out
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return out
	}
	arr, ok := decoded.([]any)
	if !ok {
		return out
	}

	for _, item := range arr {
		m, ok := asRecord(item)
		if !ok {
			continue
		}

		token := strings.TrimSpace(readString(m["token"], ""))
		if token == "" {
			token = DefaultToken
		}

		var profile map[string]any
		if p, ok := asRecord(m["profile"]); ok {
			profile = p
		}

		timestamp := readString(m["timestamp"], "")
		if timestamp == "" {
			timestamp = isoNow()
		}

		out = append(out, Snapshot{
			Token:            token,
			OrganisationName: readString(profile["organisationName"], ""),
			Country:          readString(profile["country"], ""),
			ContactEmail:     readString(profile["contactEmail"], ""),
			TimestampISO:     timestamp,
			TotalScore24:     readNumber(m["totalScoreOutOf24"], 0),
			Band:             readString(m["maturityBand"], ""),
			PillarAverages:   normalizePillarAverages(m["pillarAverages"]),
			PillarNotes:      map[string]string{},
			RawAnswers:       NormalizeAnswers(m["answers"]),
		})
	}
	return out
}
