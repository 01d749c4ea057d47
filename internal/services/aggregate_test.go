package services

import (
	"reflect"
	"testing"
)

func aggSnapshot(token, ts string, score float64) Snapshot {
	return Snapshot{Token: token, TimestampISO: ts, TotalScore24: score, Band: MaturityBand(score)}
}

func TestLatestPerSubject(t *testing.T) {
	log := []Snapshot{
		aggSnapshot("t1", "2024-01-01T00:00:00Z", 10),
		aggSnapshot("t2", "2024-01-15T00:00:00Z", 8),
		aggSnapshot("t1", "2024-02-01T00:00:00Z", 15),
	}
	rows := LatestPerSubject(log)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Token != "t1" || rows[0].TotalScore24 != 15 {
		t.Fatalf("expected t1 latest score 15, got %+v", rows[0])
	}
	if rows[1].Token != "t2" || rows[1].TotalScore24 != 8 {
		t.Fatalf("unexpected t2 row: %+v", rows[1])
	}
}

func TestLatestPerSubjectTimestampFallbacks(t *testing.T) {
	// Valid timestamps outrank unparsable ones.
	log := []Snapshot{
		aggSnapshot("t1", "not-a-date", 20),
		aggSnapshot("t1", "2024-01-01T00:00:00Z", 5),
	}
	rows := LatestPerSubject(log)
	if rows[0].TotalScore24 != 5 {
		t.Fatalf("valid timestamp should win, got %+v", rows[0])
	}

	// Both unparsable: lexicographically greater raw string wins.
	log = []Snapshot{
		aggSnapshot("t1", "bbb", 1),
		aggSnapshot("t1", "aaa", 2),
		aggSnapshot("t1", "ccc", 3),
	}
	rows = LatestPerSubject(log)
	if rows[0].TotalScore24 != 3 {
		t.Fatalf("lexicographic fallback should pick ccc, got %+v", rows[0])
	}
}

func TestLatestPerSubjectDisplayFallbacks(t *testing.T) {
	log := []Snapshot{{Token: "", TimestampISO: "2024-01-01T00:00:00Z", OrganisationName: "  ", Country: ""}}
	rows := LatestPerSubject(log)
	if rows[0].Token != DefaultToken {
		t.Fatalf("expected default token bucket, got %q", rows[0].Token)
	}
	if rows[0].OrganisationName != "Not set" || rows[0].Country != "Not set" {
		t.Fatalf("expected Not set fallbacks, got %+v", rows[0])
	}
}

func TestFilterRows(t *testing.T) {
	rows := []Row{
		{Token: "t1", OrganisationName: "Parliament of Fiji", Country: "Fiji"},
		{Token: "t2", OrganisationName: "Parliament of Samoa", Country: "Samoa"},
		{Token: "t3", OrganisationName: "Vanuatu Assembly", Country: "Vanuatu"},
	}

	if got := FilterRows(rows, "Fiji", ""); len(got) != 1 || got[0].Token != "t1" {
		t.Fatalf("country filter failed: %+v", got)
	}
	if got := FilterRows(rows, "All", ""); len(got) != 3 {
		t.Fatalf("All should not filter: %d", len(got))
	}
	if got := FilterRows(rows, "", "parliament"); len(got) != 2 {
		t.Fatalf("case-insensitive search failed: %+v", got)
	}
	if got := FilterRows(rows, "", "t3"); len(got) != 1 || got[0].Token != "t3" {
		t.Fatalf("token search failed: %+v", got)
	}
	if got := FilterRows(rows, "Samoa", "assembly"); len(got) != 0 {
		t.Fatalf("combined filters should intersect: %+v", got)
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{
		{Token: "a", TotalScore24: 10, CapturedAt: "2024-01-01T00:00:00Z"},
		{Token: "b", TotalScore24: 15, CapturedAt: "2024-02-01T00:00:00Z"},
		{Token: "c", TotalScore24: 10, CapturedAt: "2024-03-01T00:00:00Z"},
	}

	got := SortRows(rows, SortByScore, SortDesc)
	wantOrder := []string{"b", "c", "a"} // score ties break newest first
	for i, w := range wantOrder {
		if got[i].Token != w {
			t.Fatalf("score desc: expected %v, got %+v", wantOrder, got)
		}
	}

	got = SortRows(rows, SortByScore, SortAsc)
	wantOrder = []string{"c", "a", "b"}
	for i, w := range wantOrder {
		if got[i].Token != w {
			t.Fatalf("score asc: expected %v, got %+v", wantOrder, got)
		}
	}

	dateTies := []Row{
		{Token: "a", TotalScore24: 5, CapturedAt: "2024-01-01T00:00:00Z"},
		{Token: "b", TotalScore24: 12, CapturedAt: "2024-01-01T00:00:00Z"},
	}
	got = SortRows(dateTies, SortByDate, SortDesc)
	if got[0].Token != "b" {
		t.Fatalf("date ties should break by highest score: %+v", got)
	}
	got = SortRows(dateTies, SortByDate, SortAsc)
	if got[0].Token != "b" {
		t.Fatalf("date tiebreak is highest score regardless of direction: %+v", got)
	}
}

func TestCountries(t *testing.T) {
	rows := []Row{
		{Country: "Samoa"},
		{Country: "Fiji"},
		{Country: "Samoa"},
		{Country: "Not set"},
	}
	if got := Countries(rows); !reflect.DeepEqual(got, []string{"Fiji", "Samoa"}) {
		t.Fatalf("unexpected countries: %v", got)
	}
}

func TestInsightsWeakestPillar(t *testing.T) {
	rows := []Row{
		{Token: "a", PillarAverages: []PillarAverage{
			{PillarCode: "GOV", AverageScore: 1.0},
			{PillarCode: "IAM", AverageScore: 2.0},
		}},
		{Token: "b", PillarAverages: []PillarAverage{
			{PillarCode: "GOV", AverageScore: 3.0},
			{PillarCode: "IAM", AverageScore: 2.5},
		}},
	}
	report := Insights(rows)
	if report.WeakestPillar == nil {
		t.Fatalf("expected a weakest pillar")
	}
	if report.WeakestPillar.Code != "GOV" || report.WeakestPillar.Average != 2.0 {
		t.Fatalf("expected GOV at 2.0, got %+v", report.WeakestPillar)
	}
}

func TestInsightsExcludesUnreportedPillars(t *testing.T) {
	// Only IAM is reported; pillars nobody reported must not win at zero.
	rows := []Row{{Token: "a", PillarAverages: []PillarAverage{{PillarCode: "IAM", AverageScore: 2.0}}}}
	report := Insights(rows)
	if report.WeakestPillar == nil || report.WeakestPillar.Code != "IAM" {
		t.Fatalf("expected IAM, got %+v", report.WeakestPillar)
	}
}

func TestInsightsTopQuickWins(t *testing.T) {
	rows := []Row{
		{Token: "a", RawAnswers: AnswerSet{"GOV-01": 0, "IAM-01": 1, "AST-01": 1, "END-01": 0, "PER-01": 0, "BAK-01": 1, "LOG-01": 3}},
		{Token: "b", RawAnswers: AnswerSet{"GOV-01": 1, "IAM-01": 0, "AST-01": 2}},
		{Token: "c", RawAnswers: AnswerSet{"GOV-01": 0}},
	}
	report := Insights(rows)
	if len(report.TopQuickWins) != 5 {
		t.Fatalf("expected top 5, got %d", len(report.TopQuickWins))
	}
	if report.TopQuickWins[0].QuestionID != "GOV-01" || report.TopQuickWins[0].Count != 3 {
		t.Fatalf("expected GOV-01 x3 first, got %+v", report.TopQuickWins[0])
	}
	if report.TopQuickWins[1].QuestionID != "IAM-01" || report.TopQuickWins[1].Count != 2 {
		t.Fatalf("expected IAM-01 x2 second, got %+v", report.TopQuickWins[1])
	}
	// Remaining all count 1; ties keep catalog order: AST-01, END-01, PER-01.
	want := []string{"AST-01", "END-01", "PER-01"}
	for i, w := range want {
		if report.TopQuickWins[2+i].QuestionID != w {
			t.Fatalf("tie order not catalog-stable: %+v", report.TopQuickWins)
		}
	}
	if report.TopQuickWins[0].Text == "" {
		t.Fatalf("catalog questions should carry their text")
	}
}

func TestInsightsBandDistribution(t *testing.T) {
	rows := []Row{
		{Band: "Mature"},
		{Band: "Foundational"},
		{Band: "Foundational"},
		{Band: "totally made up"},
		{Band: ""},
	}
	report := Insights(rows)
	want := []BandCount{
		{Band: "Foundational", Count: 2},
		{Band: "Mature", Count: 1},
		{Band: "Unknown", Count: 2},
	}
	if !reflect.DeepEqual(report.Bands, want) {
		t.Fatalf("unexpected bands: %+v", report.Bands)
	}
}

func TestInsightsEmpty(t *testing.T) {
	report := Insights(nil)
	if report.TotalSubjects != 0 || report.WeakestPillar != nil {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.TopQuickWins) != 0 || len(report.Bands) != 0 {
		t.Fatalf("empty input should yield empty insights: %+v", report)
	}
}
