package services

import (
	"sort"
	"strings"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/catalog"
)

// Row is one latest-per-subject entry in the fleet view.
type Row struct {
	Token            string          `json:"token"`
	OrganisationName string          `json:"organisationName"`
	Country          string          `json:"country"`
	TotalScore24     float64         `json:"totalScore24"`
	Band             string          `json:"band"`
	CapturedAt       string          `json:"capturedAt"`
	PillarAverages   []PillarAverage `json:"pillarAverages"`
	RawAnswers       AnswerSet       `json:"rawAnswers"`
}

type SortKey string

const (
	SortByDate  SortKey = "date"
	SortByScore SortKey = "score"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// notSet is the display fallback for blank organisation/country values.
const notSet = "Not set"

// LatestPerSubject reduces the full log to one row per token, keeping the
// chronologically last record. Rows come out in first-encounter order of
// their tokens, which keeps repeated reductions of the same log stable.
func LatestPerSubject(log []Snapshot) []Row {
	latestByToken := map[string]Snapshot{}
	order := []string{}

	for _, s := range log {
		tokenKey := tokenOrDefault(s.Token)
		current, seen := latestByToken[tokenKey]
		if !seen {
			latestByToken[tokenKey] = s
			order = append(order, tokenKey)
			continue
		}
		if laterSnapshot(current, s) {
			latestByToken[tokenKey] = s
		}
	}

	rows := make([]Row, 0, len(order))
	for _, tokenKey := range order {
		s := latestByToken[tokenKey]
		rows = append(rows, Row{
			Token:            tokenKey,
			OrganisationName: displayOrFallback(s.OrganisationName),
			Country:          displayOrFallback(s.Country),
			TotalScore24:     s.TotalScore24,
			Band:             s.Band,
			CapturedAt:       s.TimestampISO,
			PillarAverages:   s.PillarAverages,
			RawAnswers:       s.RawAnswers,
		})
	}
	return rows
}

func displayOrFallback(s string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return notSet
}

// FilterRows narrows rows by exact country match and a case-insensitive
// substring search over organisation name, country, and token. Empty (or
// "All") filters pass everything through.
func FilterRows(rows []Row, country, search string) []Row {
	out := make([]Row, 0, len(rows))
	q := strings.ToLower(strings.TrimSpace(search))
	for _, r := range rows {
		if country != "" && country != "All" && r.Country != country {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.OrganisationName), q) &&
			!strings.Contains(strings.ToLower(r.Country), q) &&
			!strings.Contains(strings.ToLower(r.Token), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// timeValue maps a timestamp to sortable milliseconds; unparsable values get
// -1 so they lose every timestamp comparison.
func timeValue(s string) int64 {
	t, ok := parseTimestamp(s)
	if !ok {
		return -1
	}
	return t.UnixMilli()
}

// SortRows orders rows by score or capture date. Ties break deterministically:
// equal scores by newest first, equal dates by highest score first.
func SortRows(rows []Row, key SortKey, dir SortDir) []Row {
	sorted := append([]Row(nil), rows...)

	desc := dir != SortAsc
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if key == SortByScore {
			if a.TotalScore24 != b.TotalScore24 {
				if desc {
					return a.TotalScore24 > b.TotalScore24
				}
				return a.TotalScore24 < b.TotalScore24
			}
			return timeValue(a.CapturedAt) > timeValue(b.CapturedAt)
		}

		at, bt := timeValue(a.CapturedAt), timeValue(b.CapturedAt)
		if at != bt {
			if desc {
				return at > bt
			}
			return at < bt
		}
		return a.TotalScore24 > b.TotalScore24
	})
	return sorted
}

// Countries lists the distinct country values across rows, sorted, excluding
// the "Not set" placeholder. Used to build the country filter choices.
func Countries(rows []Row) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range rows {
		if r.Country == "" || r.Country == notSet {
			continue
		}
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		out = append(out, r.Country)
	}
	sort.Strings(out)
	return out
}

// WeakestPillar identifies the pillar with the lowest cross-subject average.
type WeakestPillar struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// QuickWinCount is how many subjects scored a question 0 or 1.
type QuickWinCount struct {
	QuestionID string `json:"id"`
	Text       string `json:"text"`
	Count      int    `json:"count"`
}

// BandCount is the number of subjects currently in a band.
type BandCount struct {
	Band  string `json:"band"`
	Count int    `json:"count"`
}

// InsightsReport aggregates fleet-wide signals over the latest-per-subject
// rows.
type InsightsReport struct {
	TotalSubjects int             `json:"totalSubjects"`
	WeakestPillar *WeakestPillar  `json:"weakestPillar"`
	TopQuickWins  []QuickWinCount `json:"topQuickWins"`
	Bands         []BandCount     `json:"bands"`
}

// Insights computes the weakest pillar, the five most common quick wins, and
// the band distribution. Empty input yields empty results, never an error.
func Insights(rows []Row) InsightsReport {
	report := InsightsReport{
		TotalSubjects: len(rows),
		TopQuickWins:  []QuickWinCount{},
		Bands:         []BandCount{},
	}

	// Weakest pillar: average of reported averages per pillar. Pillars no
	// subject reported are excluded, not treated as zero.
	type pillarTotal struct {
		sum   float64
		count int
	}
	totals := map[string]*pillarTotal{}
	for _, p := range catalog.Pillars() {
		totals[p.Code] = &pillarTotal{}
	}
	for _, r := range rows {
		for _, p := range r.PillarAverages {
			entry, ok := totals[p.PillarCode]
			if !ok {
				continue
			}
			entry.sum += p.AverageScore
			entry.count++
		}
	}
	for _, p := range catalog.Pillars() {
		entry := totals[p.Code]
		if entry.count == 0 {
			continue
		}
		avg := entry.sum / float64(entry.count)
		if report.WeakestPillar == nil || avg < report.WeakestPillar.Average {
			report.WeakestPillar = &WeakestPillar{Code: p.Code, Name: p.Name, Average: avg}
		}
	}

	// Top 5 quick wins: how many subjects scored each question 0 or 1.
	// Candidates are seeded in catalog order so ties stay catalog-stable;
	// answer keys outside the catalog still count, after it.
	counts := map[string]int{}
	for _, r := range rows {
		for questionID, score := range r.RawAnswers {
			if score != 0 && score != 1 {
				continue
			}
			counts[questionID]++
		}
	}

	candidates := []QuickWinCount{}
	for _, q := range catalog.Questions() {
		if counts[q.ID] > 0 {
			candidates = append(candidates, QuickWinCount{QuestionID: q.ID, Text: q.Text, Count: counts[q.ID]})
			delete(counts, q.ID)
		}
	}
	extra := make([]string, 0, len(counts))
	for id := range counts {
		extra = append(extra, id)
	}
	sort.Strings(extra)
	for _, id := range extra {
		candidates = append(candidates, QuickWinCount{QuestionID: id, Count: counts[id]})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Count > candidates[j].Count })
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	report.TopQuickWins = candidates

	// Band distribution in fixed order; anything outside the canonical set is
	// surfaced as Unknown rather than dropped.
	bandCounts := map[string]int{}
	for _, r := range rows {
		bandCounts[canonicalBand(r.Band)]++
	}
	for _, band := range []string{BandFoundational, BandDeveloping, BandEstablished, BandMature, BandUnknown} {
		if n := bandCounts[band]; n > 0 {
			report.Bands = append(report.Bands, BandCount{Band: band, Count: n})
		}
	}

	return report
}

func canonicalBand(band string) string {
	switch strings.TrimSpace(band) {
	case BandFoundational, BandDeveloping, BandEstablished, BandMature:
		return strings.TrimSpace(band)
	default:
		return BandUnknown
	}
}
