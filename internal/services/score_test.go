package services

import (
	"math"
	"testing"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/catalog"
)

func allQuestionIDs() []string {
	ids := []string{}
	for _, q := range catalog.Questions() {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestPillarAverages(t *testing.T) {
	answers := AnswerSet{
		"GOV-01": 3,
		"GOV-02": 1,
		"GOV-03": ScoreNA,
		// GOV-04 unanswered
		"AST-01": 0,
	}
	averages := PillarAverages(answers)
	if len(averages) != 8 {
		t.Fatalf("expected 8 pillar averages, got %d", len(averages))
	}
	if averages[0].PillarCode != "GOV" {
		t.Fatalf("expected GOV first, got %s", averages[0].PillarCode)
	}

	gov := averages[0]
	if gov.AnsweredCount != 2 || gov.QuestionCount != 4 {
		t.Fatalf("unexpected GOV counts: %+v", gov)
	}
	if gov.AverageScore != 2 {
		t.Fatalf("expected GOV average 2, got %v", gov.AverageScore)
	}

	ast := averages[1]
	if ast.AverageScore != 0 || ast.AnsweredCount != 1 {
		t.Fatalf("unexpected AST entry: %+v", ast)
	}

	// Pillars with no answers average 0 with answeredCount 0.
	for _, p := range averages[2:] {
		if p.AverageScore != 0 || p.AnsweredCount != 0 {
			t.Fatalf("expected empty pillar %s to be zero, got %+v", p.PillarCode, p)
		}
	}
}

func TestTotalScore24Bounds(t *testing.T) {
	// All questions answered 3 gives the maximum total of 24.
	full := AnswerSet{}
	for _, id := range allQuestionIDs() {
		full[id] = 3
	}
	if got := TotalScore24(PillarAverages(full)); got != 24 {
		t.Fatalf("expected max total 24, got %v", got)
	}
	if got := TotalScore24(PillarAverages(nil)); got != 0 {
		t.Fatalf("expected empty total 0, got %v", got)
	}
}

func TestTotalScore24Rounding(t *testing.T) {
	answers := AnswerSet{"GOV-01": 1, "GOV-02": 1, "GOV-03": 0} // avg 2/3
	total := TotalScore24(PillarAverages(answers))
	if total != 0.67 {
		t.Fatalf("expected 0.67, got %v", total)
	}
	sum := 0.0
	for _, p := range PillarAverages(answers) {
		sum += p.AverageScore
	}
	if math.Abs(total-math.Round(sum*100)/100) > 1e-9 {
		t.Fatalf("total %v does not match rounded sum %v", total, sum)
	}
}

func TestMaturityBandBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, BandFoundational},
		{5.99, BandFoundational},
		{6, BandDeveloping},
		{11.99, BandDeveloping},
		{12, BandEstablished},
		{17.99, BandEstablished},
		{18, BandMature},
		{24, BandMature},
	}
	for _, c := range cases {
		if got := MaturityBand(c.score); got != c.want {
			t.Fatalf("MaturityBand(%v)=%s, want %s", c.score, got, c.want)
		}
	}
}

func TestBandDescription(t *testing.T) {
	for _, band := range []string{BandFoundational, BandDeveloping, BandEstablished, BandMature} {
		if BandDescription(band) == "" {
			t.Fatalf("expected description for %s", band)
		}
	}
	if BandDescription("bogus") != "" {
		t.Fatalf("expected empty description for unknown band")
	}
}

func TestConfidenceLabel(t *testing.T) {
	cases := []struct {
		answered, total int
		want            string
	}{
		{30, 30, "High"},
		{23, 30, "High"},
		{15, 30, "Medium"},
		{14, 30, "Low"},
		{0, 30, "Low"},
		{5, 0, "Low"},
	}
	for _, c := range cases {
		if got := ConfidenceLabel(c.answered, c.total); got != c.want {
			t.Fatalf("ConfidenceLabel(%d,%d)=%s, want %s", c.answered, c.total, got, c.want)
		}
	}
}

func TestBuildSnapshot(t *testing.T) {
	answers := AnswerSet{"GOV-01": 1, "GOV-02": 1, "GOV-03": 0, "IAM-01": 2}
	snap := BuildSnapshot("  tok-1 ", Profile{OrganisationName: " Org ", Country: "Fiji"}, nil, answers, "2024-03-01T00:00:00.000Z")

	if snap.Token != "tok-1" {
		t.Fatalf("expected trimmed token, got %q", snap.Token)
	}
	if snap.OrganisationName != "Org" {
		t.Fatalf("expected trimmed organisation, got %q", snap.OrganisationName)
	}
	if len(snap.PillarAverages) != 8 {
		t.Fatalf("expected 8 pillar averages")
	}
	if snap.PillarAverages[0].AverageScore != 0.6667 {
		t.Fatalf("expected GOV average stored at 4 decimals, got %v", snap.PillarAverages[0].AverageScore)
	}
	if snap.TotalScore24 != 2.67 {
		t.Fatalf("expected total 2.67, got %v", snap.TotalScore24)
	}
	if snap.Band != BandFoundational {
		t.Fatalf("expected Foundational, got %s", snap.Band)
	}
	if snap.PillarNotes == nil || snap.RawAnswers == nil {
		t.Fatalf("expected non-nil notes and answers")
	}
}

func TestBuildSnapshotDefaultToken(t *testing.T) {
	snap := BuildSnapshot("", Profile{}, nil, nil, "2024-03-01T00:00:00.000Z")
	if snap.Token != DefaultToken {
		t.Fatalf("expected default token, got %q", snap.Token)
	}
	if snap.TotalScore24 != 0 || snap.Band != BandFoundational {
		t.Fatalf("unexpected empty snapshot: %+v", snap)
	}
}

func TestRankPillarsWeakestFirst(t *testing.T) {
	averages := []PillarAverage{
		{PillarCode: "GOV", AverageScore: 2},
		{PillarCode: "AST", AverageScore: 0.5},
		{PillarCode: "IAM", AverageScore: 3},
	}
	ranked := RankPillarsWeakestFirst(averages)
	if ranked[0].PillarCode != "AST" || ranked[2].PillarCode != "IAM" {
		t.Fatalf("unexpected ranking: %+v", ranked)
	}
	if averages[0].PillarCode != "GOV" {
		t.Fatalf("input slice should not be reordered")
	}
}
