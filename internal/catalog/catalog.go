// Package catalog holds the static assessment reference data: the eight
// maturity pillars, the question bank, and the quick-win recommendation
// library. The data is fixed at build time and exposed through read-only
// lookups.
package catalog

// Pillar is one of the eight fixed maturity categories.
type Pillar struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Question belongs to exactly one pillar. Order defines in-pillar iteration
// order; IDs are globally unique in the form "<PillarCode>-<2-digit-seq>".
type Question struct {
	ID         string `json:"id"`
	PillarCode string `json:"pillarCode"`
	PillarName string `json:"pillarName"`
	Text       string `json:"text"`
	Order      int    `json:"order"`
}

// Recommendation is the quick-win payload surfaced for a low-scoring question.
type Recommendation struct {
	Title          string    `json:"recommendationTitle"`
	ActionSteps    [3]string `json:"actionSteps"`
	WhyItMatters   string    `json:"whyItMatters"`
	SuggestedOwner string    `json:"suggestedOwner"`
	Effort         string    `json:"effort"`
	IndicativeCost string    `json:"indicativeCost"`
	Timeframe      string    `json:"timeframe"`
}

// Pillars returns the pillar list in canonical order.
func Pillars() []Pillar {
	return append([]Pillar(nil), pillars...)
}

// Questions returns every question in catalog order (pillar order, then
// in-pillar question order).
func Questions() []Question {
	return append([]Question(nil), questions...)
}

// QuestionsForPillar returns the questions belonging to the given pillar code,
// in question order.
func QuestionsForPillar(code string) []Question {
	out := make([]Question, 0, 4)
	for _, q := range questions {
		if q.PillarCode == code {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up a single question. The second return is false for
// unknown ids.
func QuestionByID(id string) (Question, bool) {
	q, ok := questionsByID[id]
	return q, ok
}

// RecommendationFor returns the quick-win recommendation for a question id.
// Not every question is guaranteed an entry; absent ids return false.
func RecommendationFor(questionID string) (Recommendation, bool) {
	r, ok := quickWinsLibrary[questionID]
	return r, ok
}

var questionsByID = func() map[string]Question {
	m := make(map[string]Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}()
