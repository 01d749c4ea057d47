package services

import (
	"sort"
	"strings"
	"time"
)

// dedupWindow is how close together two identical saves must be for the
// second one to be suppressed.
const dedupWindow = 60 * time.Second

// AnswersFingerprint encodes an answer set as its sorted "key:value" pairs
// joined with "|". Equal fingerprints mean identical answers.
func AnswersFingerprint(answers AnswerSet) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + answers[k].String()
	}
	return strings.Join(parts, "|")
}

// IsDuplicateSnapshot reports whether the candidate is a redundant repeat of
// the subject's most recent snapshot: same answers fingerprint, saved within
// the dedup window. A genuine re-answer inside the window is still recorded.
func IsDuplicateSnapshot(candidate Snapshot, log []Snapshot) bool {
	tokenLabel := tokenOrDefault(candidate.Token)

	var latest *Snapshot
	for i := range log {
		if tokenOrDefault(log[i].Token) != tokenLabel {
			continue
		}
		if latest == nil || laterSnapshot(*latest, log[i]) {
			latest = &log[i]
		}
	}
	if latest == nil {
		return false
	}

	latestTime, lok := parseTimestamp(latest.TimestampISO)
	candidateTime, cok := parseTimestamp(candidate.TimestampISO)
	if !lok || !cok {
		return false
	}
	if candidateTime.Sub(latestTime) >= dedupWindow {
		return false
	}

	return AnswersFingerprint(latest.RawAnswers) == AnswersFingerprint(candidate.RawAnswers)
}
