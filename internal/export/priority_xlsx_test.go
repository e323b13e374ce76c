package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

func TestWritePriorityXLSX(t *testing.T) {
	rows := []model.PriorityRow{
		{StudentID: "S1", Age: 19, Gender: model.GenderFemale, VulnerableGroup: model.VulnerableYoungWoman,
			PlatformType: "Visual/Foto", AvgDailyUsageHours: 6.5, AddictedScore: 9.5, MentalHealthScore: 4,
			AcademicImpactLabel: model.AcademicImpacted, Highlight: model.HighlightCritical},
		{StudentID: "S4", Age: 18, Gender: model.GenderMale, VulnerableGroup: model.VulnerableVeryYoungMan,
			PlatformType: "Video Pendek", AvgDailyUsageHours: 7, AddictedScore: 8.67, MentalHealthScore: 3,
			AcademicImpactLabel: model.AcademicImpacted, Highlight: model.HighlightHigh},
		{StudentID: "S9", Age: 20, AddictedScore: 7.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePriorityXLSX(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(PrioritySheet)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, PriorityHeader, got[0])
	assert.Equal(t, "S1", got[1][0])
	assert.Equal(t, "19", got[1][1])
	assert.Equal(t, "9.5", got[1][6])
	assert.Equal(t, "8.67", got[2][6])

	critical, err := f.GetCellStyle(PrioritySheet, "G2")
	require.NoError(t, err)
	high, err := f.GetCellStyle(PrioritySheet, "G3")
	require.NoError(t, err)
	plain, err := f.GetCellStyle(PrioritySheet, "G4")
	require.NoError(t, err)
	assert.NotZero(t, critical)
	assert.NotZero(t, high)
	assert.NotEqual(t, critical, high)
	assert.Zero(t, plain)
}

func TestWritePriorityXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePriorityXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(PrioritySheet)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
