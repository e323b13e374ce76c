package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

func TestBuildOverview(t *testing.T) {
	view := BuildOverview(sampleRecords(), analytics.FilterSpec{})

	assert.Equal(t, 6, view.TotalRecords)
	assert.Equal(t, 6, view.FilteredRecords)
	assert.Equal(t, 2, view.Countries)
	assert.Equal(t, 6, view.KPIs.Total)
	assert.Equal(t, 2, view.KPIs.HighRisk.Count)
	assert.InDelta(t, 100.0/3, view.KPIs.HighRisk.Percent, 1e-9)
	assert.Equal(t, model.Share{Count: 3, Percent: 50}, view.KPIs.Vulnerable)
	assert.Equal(t, model.Share{Count: 3, Percent: 50}, view.KPIs.HighUsage)
	assert.Len(t, view.UsageVsMental, 6)
	assert.Len(t, view.TopPlatforms, 4)
	assert.Len(t, view.ScatterLines, 2)
	assert.True(t, view.ScatterTrend.Slope.Valid)
	assert.Less(t, view.ScatterTrend.Slope.Float64, 0.0, "more usage, worse mental health")

	assert.Equal(t, []model.CategoryCount{
		{Category: model.SleepVeryShort, Count: 1},
		{Category: model.SleepShort, Count: 1},
		{Category: model.SleepFair, Count: 1},
		{Category: model.SleepGood, Count: 2},
		{Category: model.SleepExcessive, Count: 1},
	}, view.SleepQuality)
	assert.Equal(t, 6, view.Usage.Count)
}

func TestBuildOverview_Filtered(t *testing.T) {
	view := BuildOverview(sampleRecords(), analytics.FilterSpec{Gender: model.GenderFemale})

	assert.Equal(t, 6, view.TotalRecords)
	assert.Equal(t, 3, view.FilteredRecords)
	assert.Equal(t, 1, view.KPIs.HighRisk.Count)
	assert.InDelta(t, 100.0/3, view.KPIs.HighRisk.Percent, 1e-9)
	assert.Equal(t, []string{model.GenderFemale}, view.AgeGenderHeatmap.Cols)
}

func TestBuildOverview_EmptySelection(t *testing.T) {
	view := BuildOverview(sampleRecords(), analytics.FilterSpec{PlatformType: "Tidak Ada"})

	assert.Equal(t, 0, view.FilteredRecords)
	assert.Equal(t, model.Share{}, view.KPIs.HighRisk)
	assert.Empty(t, view.AddictionLevels)
	assert.Empty(t, view.UsageVsMental)
	assert.False(t, view.Usage.Mean.Valid)
	assert.False(t, view.ScatterTrend.Slope.Valid)
	assert.Equal(t, 2, view.Countries, "footer always describes the whole dataset")
}

func TestBuildVulnerable(t *testing.T) {
	view := BuildVulnerable(sampleRecords())

	assert.Equal(t, 6, view.TotalRecords)
	assert.Equal(t, 3, view.KPIs.VulnerableAll)
	assert.Equal(t, 2, view.KPIs.YoungWomen.Count)
	assert.InDelta(t, 100.0/3, view.KPIs.YoungWomen.Percent, 1e-9)
	assert.Equal(t, 1, view.KPIs.VeryYoungMen.Count)
	assert.InDelta(t, (9.0+8.67+6.0)/3, view.KPIs.AvgAddiction.Float64, 1e-9)
	assert.Equal(t, 2, view.KPIs.HighRisk.Count)
	assert.InDelta(t, 200.0/3, view.KPIs.HighRisk.Percent, 1e-9)

	assert.Equal(t, []model.CategoryCount{
		{Category: model.VulnerableYoungWoman, Count: 2},
		{Category: model.VulnerableVeryYoungMan, Count: 1},
	}, view.Breakdown)

	require.Len(t, view.Priority, 2)
	assert.Equal(t, "S1", view.Priority[0].StudentID)
	assert.Equal(t, model.HighlightCritical, view.Priority[0].Highlight)
	assert.Equal(t, "S4", view.Priority[1].StudentID)
	assert.Equal(t, model.HighlightHigh, view.Priority[1].Highlight)

	require.Len(t, view.Comparison, 6)
	usage := view.Comparison[0]
	assert.InDelta(t, 5.5, usage.Vulnerable.Float64, 1e-9)
	assert.InDelta(t, 3.0, usage.NonVulnerable.Float64, 1e-9)
	academic := view.Comparison[5]
	assert.InDelta(t, 200.0/3, academic.Vulnerable.Float64, 1e-9)
	assert.InDelta(t, 100.0/3, academic.NonVulnerable.Float64, 1e-9)
	assert.Equal(t, Recommendations, view.Recommendations)
}

func TestBuildVulnerable_NoVulnerableStudents(t *testing.T) {
	records := []model.StudentRecord{
		student("X", model.GenderMale, 30, "Indonesia", "Profesional", 1, 2, 9, 8),
	}

	view := BuildVulnerable(records)

	assert.Equal(t, 0, view.KPIs.VulnerableAll)
	assert.False(t, view.KPIs.AvgAddiction.Valid)
	assert.Equal(t, model.Share{}, view.KPIs.HighRisk)
	assert.Empty(t, view.Priority)
	for _, row := range view.Comparison {
		assert.False(t, row.Vulnerable.Valid, row.Metric)
		assert.True(t, row.NonVulnerable.Valid, row.Metric)
	}
}

func TestBuildPlatforms(t *testing.T) {
	view := BuildPlatforms(sampleRecords(), nil)

	assert.Equal(t, []string{"Pesan Instan", "Profesional", "Video Pendek", "Visual/Foto"}, view.Available)
	assert.Equal(t, view.Available, view.Selected)
	require.Len(t, view.Stats, 4)
	assert.Equal(t, 2, view.Stats[0].Users)

	assert.Equal(t, []string{"Video Pendek", "Visual/Foto", "Pesan Instan", "Profesional"}, groups(view.Usage.Values))
	require.NotNil(t, view.Usage.Line)
	assert.Equal(t, model.HighUsageHours, view.Usage.Line.Value)
	assert.Equal(t, model.HighRiskCutoff, view.Addiction.Line.Value)
	assert.Equal(t, []string{"Video Pendek", "Visual/Foto", "Pesan Instan", "Profesional"}, groups(view.MentalHealth.Values))

	quadrants := map[string]string{}
	for _, p := range view.ImpactMatrix {
		quadrants[p.Platform] = p.Quadrant
	}
	assert.Equal(t, map[string]string{
		"Visual/Foto":  model.QuadrantDanger,
		"Video Pendek": model.QuadrantDanger,
		"Profesional":  model.QuadrantIdeal,
		"Pesan Instan": model.QuadrantIdeal,
	}, quadrants)

	assert.Equal(t, []string{"Video Pendek", "Visual/Foto", "Pesan Instan"}, groups(view.Riskiest))
	assert.Equal(t, []string{"Profesional", "Pesan Instan", "Visual/Foto"}, groups(view.Safest))
}

func TestBuildPlatforms_Selection(t *testing.T) {
	none := BuildPlatforms(sampleRecords(), []string{})
	assert.Empty(t, none.Stats)
	assert.Empty(t, none.Riskiest)
	assert.Len(t, none.Available, 4)

	one := BuildPlatforms(sampleRecords(), []string{"Profesional"})
	require.Len(t, one.Stats, 1)
	assert.Equal(t, "Profesional", one.Stats[0].Group)
	assert.Len(t, one.Riskiest, 1)
}

func TestQuadrant(t *testing.T) {
	tests := []struct {
		usage, mental float64
		want          string
	}{
		{2, 8, model.QuadrantIdeal},
		{6.5, 8, model.QuadrantConcern},
		{2, 4.5, model.QuadrantMonitor},
		{6.5, 4.5, model.QuadrantDanger},
		{4, 6, model.QuadrantIdeal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quadrant(tt.usage, tt.mental), "usage=%v mental=%v", tt.usage, tt.mental)
	}
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, model.HighlightCritical, Highlight(9))
	assert.Equal(t, model.HighlightHigh, Highlight(8.5))
	assert.Equal(t, "", Highlight(7.9))
}

func TestParsePlatforms(t *testing.T) {
	assert.Nil(t, ParsePlatforms(nil))
	assert.Equal(t, []string{"a", "b", "c"}, ParsePlatforms([]string{"a, b", "c"}))
	got := ParsePlatforms([]string{""})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func groups(values []model.GroupValue) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Group
	}
	return out
}
