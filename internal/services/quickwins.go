package services

import (
	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/catalog"
)

// QuickWin joins a low-scoring answer with its recommendation payload.
type QuickWin struct {
	QuestionID     string                 `json:"id"`
	PillarCode     string                 `json:"pillar"`
	QuestionText   string                 `json:"questionText"`
	Score          Score                  `json:"score"`
	Recommendation catalog.Recommendation `json:"recommendation"`
}

// ResolveQuickWins returns a recommendation for every question scored exactly
// 0 or 1, in catalog iteration order. Questions without a library entry are
// skipped; that is a data gap, not an error. Callers may cap how many they
// display, the resolver returns the full set.
func ResolveQuickWins(answers AnswerSet) []QuickWin {
	out := []QuickWin{}
	for _, q := range catalog.Questions() {
		a, ok := answers[q.ID]
		if !ok || (a != 0 && a != 1) {
			continue
		}
		rec, ok := catalog.RecommendationFor(q.ID)
		if !ok {
			continue
		}
		out = append(out, QuickWin{
			QuestionID:     q.ID,
			PillarCode:     q.PillarCode,
			QuestionText:   q.Text,
			Score:          a,
			Recommendation: rec,
		})
	}
	return out
}
