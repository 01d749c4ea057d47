package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/Salman700-356/pacific-parliament-quick-scan-assessment/internal/catalog"
)

// ExportLatestCSV renders the latest-per-subject table. Column layout and
// quoting are an interoperability contract with previously produced exports:
// token, organisationName, country, one column per pillar in catalog order,
// totalScore24, band, timestampISO. Pillar cells and the total are formatted
// to two decimals; a pillar missing from a record leaves its cell empty.
func ExportLatestCSV(rows []Row) ([]byte, error) {
	pillars := catalog.Pillars()

	header := []string{"token", "organisationName", "country"}
	for _, p := range pillars {
		header = append(header, p.Code)
	}
	header = append(header, "totalScore24", "band", "timestampISO")

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range rows {
		byCode := map[string]PillarAverage{}
		for _, p := range r.PillarAverages {
			byCode[p.PillarCode] = p
		}

		rec := []string{r.Token, r.OrganisationName, r.Country}
		for _, p := range pillars {
			avg, ok := byCode[p.Code]
			if !ok {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(avg.AverageScore, 'f', 2, 64))
		}
		rec = append(rec,
			strconv.FormatFloat(r.TotalScore24, 'f', 2, 64),
			r.Band,
			r.CapturedAt,
		)
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportLogJSON serializes the raw snapshot log with full fidelity.
func ExportLogJSON(log []Snapshot) ([]byte, error) {
	if log == nil {
		log = []Snapshot{}
	}
	return json.MarshalIndent(log, "", "  ")
}
