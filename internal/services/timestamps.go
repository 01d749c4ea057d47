package services

import "time"

// parseTimestamp parses a snapshot timestamp. Records written by this system
// use ISO-8601, but the log can carry older or hand-edited entries, so
// failure is a normal outcome and reported via ok=false rather than an error.
func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// laterSnapshot reports whether b is more recent than a. A record with a
// parsable timestamp always outranks one without; when neither parses, the
// raw strings are compared lexicographically. The fallback is deliberate,
// documented behavior, not a guess.
func laterSnapshot(a, b Snapshot) bool {
	at, aok := parseTimestamp(a.TimestampISO)
	bt, bok := parseTimestamp(b.TimestampISO)
	switch {
	case !aok && !bok:
		return b.TimestampISO > a.TimestampISO
	case !aok:
		return true
	case !bok:
		return false
	default:
		return bt.After(at)
	}
}

func tokenOrDefault(token string) string {
	if token == "" {
		return DefaultToken
	}
	return token
}
