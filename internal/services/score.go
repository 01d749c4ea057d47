package services

import (
	"math"
	"sort"
	"strings"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/catalog"
)

// Maturity bands derived from the total score. Thresholds are half-open:
// [0,6) Foundational, [6,12) Developing, [12,18) Established, [18,24] Mature.
const (
	BandFoundational = "Foundational"
	BandDeveloping   = "Developing"
	BandEstablished  = "Established"
	BandMature       = "Mature"
	BandUnknown      = "Unknown"
)

// PillarAverages computes one entry per pillar, in catalog order. NA and
// missing answers reduce the answered count; they never fail the computation.
func PillarAverages(answers AnswerSet) []PillarAverage {
	out := make([]PillarAverage, 0, 8)
	for _, p := range catalog.Pillars() {
		questions := catalog.QuestionsForPillar(p.Code)

		sum := 0
		count := 0
		for _, q := range questions {
			a, ok := answers[q.ID]
			if !ok || a.IsNA() {
				continue
			}
			sum += int(a)
			count++
		}

		avg := 0.0
		if count > 0 {
			avg = float64(sum) / float64(count)
		}

		out = append(out, PillarAverage{
			PillarCode:    p.Code,
			PillarName:    p.Name,
			AverageScore:  avg,
			AnsweredCount: count,
			QuestionCount: len(questions),
		})
	}
	return out
}

// TotalScore24 sums the eight pillar averages (each 0..3) and rounds to two
// decimal places.
func TotalScore24(averages []PillarAverage) float64 {
	total := 0.0
	for _, p := range averages {
		total += p.AverageScore
	}
	return round2(total)
}

// MaturityBand maps a total score to its band.
func MaturityBand(score24 float64) string {
	switch {
	case score24 < 6:
		return BandFoundational
	case score24 < 12:
		return BandDeveloping
	case score24 < 18:
		return BandEstablished
	default:
		return BandMature
	}
}

// BandDescription returns the guidance text shown next to a band.
func BandDescription(band string) string {
	switch band {
	case BandFoundational:
		return "Core cybersecurity controls are limited or inconsistent. Focus first on a small number of practical basics (MFA, backups, patching, admin separation)."
	case BandDeveloping:
		return "Controls exist in some areas but may be inconsistent or not embedded. Focus on consistency, ownership, and quick standardisation."
	case BandEstablished:
		return "Most foundational controls are in place. Focus on improving monitoring, testing, and strengthening governance and resilience."
	case BandMature:
		return "Strong baseline maturity. Focus on continuous improvement, metrics, assurance testing, and operational resilience."
	default:
		return ""
	}
}

// ConfidenceLabel rates result confidence from how much of the questionnaire
// was answered (excluding NA): >=75% High, >=50% Medium, otherwise Low.
func ConfidenceLabel(answeredExcludingNA, totalQuestions int) string {
	if totalQuestions <= 0 {
		return "Low"
	}
	ratio := float64(answeredExcludingNA) / float64(totalQuestions)
	if ratio >= 0.75 {
		return "High"
	}
	if ratio >= 0.5 {
		return "Medium"
	}
	return "Low"
}

// RankPillarsWeakestFirst orders pillar averages lowest average first, for
// the "focus areas" view. The input slice is not modified.
func RankPillarsWeakestFirst(averages []PillarAverage) []PillarAverage {
	ranked := append([]PillarAverage(nil), averages...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageScore < ranked[j].AverageScore
	})
	return ranked
}

// BuildSnapshot assembles the persistable record for one save action. Pillar
// averages are carried at 4-decimal precision; the total at 2.
func BuildSnapshot(token string, profile Profile, notes map[string]string, answers AnswerSet, timestampISO string) Snapshot {
	tokenLabel := strings.TrimSpace(token)
	if tokenLabel == "" {
		tokenLabel = DefaultToken
	}
	if timestampISO == "" {
		timestampISO = isoNow()
	}
	if notes == nil {
		notes = map[string]string{}
	}
	if answers == nil {
		answers = AnswerSet{}
	}

	averages := PillarAverages(answers)
	total := TotalScore24(averages)

	stored := make([]PillarAverage, len(averages))
	for i, p := range averages {
		p.AverageScore = round4(p.AverageScore)
		stored[i] = p
	}

	return Snapshot{
		Token:            tokenLabel,
		OrganisationName: strings.TrimSpace(profile.OrganisationName),
		Country:          strings.TrimSpace(profile.Country),
		ContactEmail:     strings.TrimSpace(profile.ContactEmail),
		TimestampISO:     timestampISO,
		TotalScore24:     total,
		Band:             MaturityBand(total),
		PillarAverages:   stored,
		PillarNotes:      notes,
		RawAnswers:       answers,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
