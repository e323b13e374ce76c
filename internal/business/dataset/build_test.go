package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

func fixtureTable(t *testing.T) Table {
	t.Helper()
	table, err := NewCSVSource("testdata/students.csv").Rows(context.Background())
	require.NoError(t, err)
	return table
}

func TestBuild_FromCSV(t *testing.T) {
	records, report, err := Build(fixtureTable(t), BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, 6, report.Rows)
	assert.Equal(t, 4, report.Accepted)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"S001", "S002", "S003", "S006"}, []string{
		records[0].StudentID, records[1].StudentID, records[2].StudentID, records[3].StudentID,
	})

	require.Len(t, report.Rejected, 2)
	assert.Equal(t, model.RowError{Line: 5, Column: model.ColAge, Reason: `not a number: "abc"`}, report.Rejected[0])
	assert.Equal(t, 6, report.Rejected[1].Line)
	assert.Equal(t, model.ColAddictedScore, report.Rejected[1].Column)

	// S003 stores Risiko Rendah for a score of 7.0.
	assert.Equal(t, map[string]int{model.ColAddictionLevel: 1}, report.Warnings)
}

func TestBuild_DerivesBands(t *testing.T) {
	records, _, err := Build(fixtureTable(t), BuildOptions{})
	require.NoError(t, err)

	s1 := records[0]
	assert.Equal(t, model.Age16to19, s1.AgeGroup)
	assert.Equal(t, model.AddictionHigh, s1.AddictionLevel)
	assert.True(t, s1.HighRiskAddiction)
	assert.True(t, s1.Vulnerable.YoungWoman)
	assert.Equal(t, model.VulnerableYoungWoman, s1.VulnerableGroup)
	assert.True(t, s1.AcademicImpacted)

	s3 := records[2]
	assert.Equal(t, model.GenderFemale, s3.Gender, "English gender label is normalised")
	assert.Equal(t, 5.0, s3.AvgDailyUsageHours, "decimal comma is accepted")
	assert.Equal(t, model.AddictionModerate, s3.AddictionLevel)
	assert.False(t, s3.Vulnerable.Any())

	assert.False(t, records[1].AcademicImpacted)
}

func TestBuild_Strict(t *testing.T) {
	records, report, err := Build(fixtureTable(t), BuildOptions{Strict: true})

	require.ErrorIs(t, err, ErrRejectedRows)
	assert.Contains(t, err.Error(), "first at line 5")
	assert.Nil(t, records)
	assert.Len(t, report.Rejected, 2)
}

func TestBuild_MissingColumn(t *testing.T) {
	table := Table{Columns: []string{model.ColStudentID, model.ColGender}}

	_, _, err := Build(table, BuildOptions{})

	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), model.ColAddictedScore)
}

func TestBuild_ReportsEveryProblemInRow(t *testing.T) {
	row := validFields()
	row[model.ColAvgDailyUsageHours] = "NA"
	row[model.ColSleepHoursPerNight] = ""
	row[model.ColAge] = "19.5"
	table := Table{Columns: model.RequiredColumns, Rows: []model.RawRow{{Line: 2, Fields: row}}}

	records, report, err := Build(table, BuildOptions{})

	require.NoError(t, err)
	assert.Empty(t, records)
	cols := []string{}
	for _, e := range report.Rejected {
		cols = append(cols, e.Column)
	}
	assert.ElementsMatch(t, []string{model.ColAvgDailyUsageHours, model.ColSleepHoursPerNight, model.ColAge}, cols)
}

func TestBuild_ValidationRanges(t *testing.T) {
	tests := []struct {
		name   string
		column string
		value  string
	}{
		{"blank id", model.ColStudentID, "  "},
		{"age too low", model.ColAge, "9"},
		{"usage above a day", model.ColAvgDailyUsageHours, "25"},
		{"negative mental health", model.ColMentalHealthScore, "-1"},
		{"sleep above a day", model.ColSleepHoursPerNight, "24.5"},
		{"blank platform", model.ColPlatformType, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validFields()
			row[tt.column] = tt.value
			table := Table{Columns: model.RequiredColumns, Rows: []model.RawRow{{Line: 2, Fields: row}}}

			_, report, err := Build(table, BuildOptions{})

			require.NoError(t, err)
			require.Len(t, report.Rejected, 1)
			assert.Equal(t, tt.column, report.Rejected[0].Column)
		})
	}
}

func TestBuild_DuplicateIDsWarn(t *testing.T) {
	table := Table{Columns: model.RequiredColumns, Rows: []model.RawRow{
		{Line: 2, Fields: validFields()},
		{Line: 3, Fields: validFields()},
	}}

	records, report, err := Build(table, BuildOptions{})

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, report.Warnings[WarnDuplicateID])
}

func validFields() map[string]string {
	return map[string]string{
		model.ColStudentID:           "X1",
		model.ColGender:              model.GenderMale,
		model.ColAge:                 "19",
		model.ColCountry:             "Indonesia",
		model.ColPlatformType:        "Video Pendek",
		model.ColAvgDailyUsageHours:  "4.5",
		model.ColAddictedScore:       "7",
		model.ColMentalHealthScore:   "5",
		model.ColSleepHoursPerNight:  "6",
		model.ColAcademicImpactLabel: model.AcademicImpacted,
	}
}

func TestBuild_KeepsStoredAgeGroup(t *testing.T) {
	labelled := validFields()
	labelled[model.ColAge] = "19"
	labelled[model.ColAgeGroup] = "18-20"
	unlabelled := validFields()
	unlabelled[model.ColStudentID] = "X2"
	unlabelled[model.ColAge] = "23"
	columns := append([]string{model.ColAgeGroup}, model.RequiredColumns...)
	table := Table{Columns: columns, Rows: []model.RawRow{
		{Line: 2, Fields: labelled},
		{Line: 3, Fields: unlabelled},
	}}

	records, report, err := Build(table, BuildOptions{})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "18-20", records[0].AgeGroup)
	assert.Equal(t, model.Age22to23, records[1].AgeGroup, "blank label falls back to the age bucket")
	assert.Nil(t, report.Warnings)
}

func TestBuild_WarnsOnConflictingAgeGroups(t *testing.T) {
	a := validFields()
	a[model.ColAgeGroup] = "18-20"
	b := validFields()
	b[model.ColStudentID] = "X2"
	b[model.ColAgeGroup] = "19-21"
	c := validFields()
	c[model.ColStudentID] = "X3"
	c[model.ColAgeGroup] = "18-20"
	table := Table{Columns: model.AllColumns, Rows: []model.RawRow{
		{Line: 2, Fields: a},
		{Line: 3, Fields: b},
		{Line: 4, Fields: c},
	}}

	records, report, err := Build(table, BuildOptions{})

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "19-21", records[1].AgeGroup)
	assert.Equal(t, map[string]int{WarnAgeGroupConflict: 1}, report.Warnings)
}
