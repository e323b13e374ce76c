package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

func TestDocumentRoundTrip(t *testing.T) {
	row := model.RawRow{Line: 7, Fields: map[string]string{
		model.ColStudentID: "S007",
		model.ColAge:       "20",
	}}

	doc := documentFromRow(row)
	assert.Equal(t, 7, doc[rowField])

	// Firestore hands integers back as int64.
	doc[rowField] = int64(7)
	assert.Equal(t, row, rowFromDocument(doc, 99))
	assert.Equal(t, "row-000007", DocumentID(row))
}

func TestRowFromDocument_StringifiesValues(t *testing.T) {
	got := rowFromDocument(map[string]interface{}{
		model.ColAge:                int64(19),
		model.ColAddictedScore:      8.67,
		model.ColHighRiskAddiction:  true,
		model.ColSleepHoursPerNight: float64(6),
		model.ColCountry:            nil,
	}, 3)

	assert.Equal(t, 3, got.Line)
	assert.Equal(t, map[string]string{
		model.ColAge:                "19",
		model.ColAddictedScore:      "8.67",
		model.ColHighRiskAddiction:  "true",
		model.ColSleepHoursPerNight: "6",
		model.ColCountry:            "",
	}, got.Fields)
}
