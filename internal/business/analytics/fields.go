// Package analytics implements the record filter and the aggregations behind
// every dashboard view. All functions are pure: they never modify their input
// and return the same output for the same input.
package analytics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// ErrUnknownField is returned when a column name has no accessor.
var ErrUnknownField = errors.New("unknown field")

// CategoryField reads a categorical attribute of a record.
type CategoryField struct {
	Name string
	Get  func(model.StudentRecord) string
	// Order is the natural label order, if the field has one.
	Order []string
}

// NumericField reads a numeric attribute of a record.
type NumericField struct {
	Name string
	Get  func(model.StudentRecord) float64
}

var (
	Gender = CategoryField{
		Name: model.ColGender,
		Get:  func(r model.StudentRecord) string { return r.Gender },
	}

	AgeGroup = CategoryField{
		Name:  model.ColAgeGroup,
		Get:   func(r model.StudentRecord) string { return r.AgeGroup },
		Order: model.AgeGroupOrder,
	}

	Country = CategoryField{
		Name: model.ColCountry,
		Get:  func(r model.StudentRecord) string { return r.Country },
	}

	PlatformType = CategoryField{
		Name: model.ColPlatformType,
		Get:  func(r model.StudentRecord) string { return r.PlatformType },
	}

	UsageDurationCategory = CategoryField{
		Name:  model.ColUsageDurationCategory,
		Get:   func(r model.StudentRecord) string { return r.UsageDurationCategory },
		Order: model.UsageOrder,
	}

	AddictionLevel = CategoryField{
		Name:  model.ColAddictionLevel,
		Get:   func(r model.StudentRecord) string { return r.AddictionLevel },
		Order: model.AddictionLevelOrder,
	}

	HighRiskAddiction = CategoryField{
		Name: model.ColHighRiskAddiction,
		Get:  highRiskLabel,
	}

	MentalHealthDetail = CategoryField{
		Name:  model.ColMentalHealthDetail,
		Get:   func(r model.StudentRecord) string { return r.MentalHealthDetail },
		Order: model.MentalHealthOrder,
	}

	SleepQualityDetail = CategoryField{
		Name:  model.ColSleepQualityDetail,
		Get:   func(r model.StudentRecord) string { return r.SleepQualityDetail },
		Order: model.SleepQualityOrder,
	}

	VulnerableGroup = CategoryField{
		Name:  model.ColVulnerableGroup,
		Get:   func(r model.StudentRecord) string { return r.VulnerableGroup },
		Order: []string{model.VulnerableYoungWoman, model.VulnerableVeryYoungMan, model.VulnerableNone},
	}

	AcademicImpactLabel = CategoryField{
		Name: model.ColAcademicImpactLabel,
		Get:  func(r model.StudentRecord) string { return r.AcademicImpactLabel },
	}
)

func highRiskLabel(r model.StudentRecord) string {
	if r.HighRiskAddiction {
		return model.HighRiskYes
	}
	return model.HighRiskNo
}

var (
	Age                = NumericField{Name: model.ColAge, Get: func(r model.StudentRecord) float64 { return float64(r.Age) }}
	AvgDailyUsageHours = NumericField{Name: model.ColAvgDailyUsageHours, Get: func(r model.StudentRecord) float64 { return r.AvgDailyUsageHours }}
	AddictedScore      = NumericField{Name: model.ColAddictedScore, Get: func(r model.StudentRecord) float64 { return r.AddictedScore }}
	MentalHealthScore  = NumericField{Name: model.ColMentalHealthScore, Get: func(r model.StudentRecord) float64 { return r.MentalHealthScore }}
	SleepHoursPerNight = NumericField{Name: model.ColSleepHoursPerNight, Get: func(r model.StudentRecord) float64 { return r.SleepHoursPerNight }}
)

var categoryFields = indexCategories(
	Gender, AgeGroup, Country, PlatformType, UsageDurationCategory, AddictionLevel,
	HighRiskAddiction, MentalHealthDetail, SleepQualityDetail, VulnerableGroup, AcademicImpactLabel,
)

var numericFields = indexNumerics(Age, AvgDailyUsageHours, AddictedScore, MentalHealthScore, SleepHoursPerNight)

// CategoryByName resolves a categorical column name, case-insensitively.
func CategoryByName(name string) (CategoryField, error) {
	if f, ok := categoryFields[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return CategoryField{}, fmt.Errorf("%w: %q is not a categorical column", ErrUnknownField, name)
}

// NumericByName resolves a numeric column name, case-insensitively.
func NumericByName(name string) (NumericField, error) {
	if f, ok := numericFields[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return NumericField{}, fmt.Errorf("%w: %q is not a numeric column", ErrUnknownField, name)
}

func indexCategories(fields ...CategoryField) map[string]CategoryField {
	out := make(map[string]CategoryField, len(fields))
	for _, f := range fields {
		out[strings.ToLower(f.Name)] = f
	}
	return out
}

func indexNumerics(fields ...NumericField) map[string]NumericField {
	out := make(map[string]NumericField, len(fields))
	for _, f := range fields {
		out[strings.ToLower(f.Name)] = f
	}
	return out
}
