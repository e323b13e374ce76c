package model

import (
	"encoding/json"
	"math"
)

// Column headers of the survey export. Firestore documents imported from the
// CSV use the same keys.
const (
	ColStudentID             = "Student_ID"
	ColGender                = "Gender"
	ColAge                   = "Age"
	ColAgeGroup              = "Age_Group"
	ColCountry               = "Country"
	ColPlatformType          = "Platform_Type"
	ColAvgDailyUsageHours    = "Avg_Daily_Usage_Hours"
	ColUsageDurationCategory = "Usage_Duration_Category"
	ColAddictedScore         = "Addicted_Score"
	ColAddictionLevel        = "Addiction_Level"
	ColHighRiskAddiction     = "High_Risk_Addiction"
	ColMentalHealthScore     = "Mental_Health_Score"
	ColMentalHealthDetail    = "Mental_Health_Detail"
	ColSleepHoursPerNight    = "Sleep_Hours_Per_Night"
	ColSleepQualityDetail    = "Sleep_Quality_Detail"
	ColVulnerableGroup       = "Vulnerable_Group"
	ColAcademicImpactLabel   = "Academic_Impact_Label"
)

// AllColumns lists every column in export order.
var AllColumns = []string{
	ColStudentID,
	ColGender,
	ColAge,
	ColAgeGroup,
	ColCountry,
	ColPlatformType,
	ColAvgDailyUsageHours,
	ColUsageDurationCategory,
	ColAddictedScore,
	ColAddictionLevel,
	ColHighRiskAddiction,
	ColMentalHealthScore,
	ColMentalHealthDetail,
	ColSleepHoursPerNight,
	ColSleepQualityDetail,
	ColVulnerableGroup,
	ColAcademicImpactLabel,
}

// RequiredColumns must be present in every source. Derived label columns are
// optional because they are recomputed at load.
var RequiredColumns = []string{
	ColStudentID,
	ColGender,
	ColAge,
	ColCountry,
	ColPlatformType,
	ColAvgDailyUsageHours,
	ColAddictedScore,
	ColMentalHealthScore,
	ColSleepHoursPerNight,
	ColAcademicImpactLabel,
}

// RawRow is one untyped row as read from a source, keyed by column header.
type RawRow struct {
	Line   int               `json:"line"`
	Fields map[string]string `json:"fields"`
}

// VulnerableTags marks membership in the at-risk subgroups.
type VulnerableTags struct {
	YoungWoman   bool `json:"youngWoman"`
	VeryYoungMan bool `json:"veryYoungMan"`
}

// Any reports membership in at least one subgroup.
func (v VulnerableTags) Any() bool {
	return v.YoungWoman || v.VeryYoungMan
}

// StudentRecord is one survey response with its derived bands. Records are
// built once at load and never modified afterwards.
type StudentRecord struct {
	StudentID             string         `json:"studentId" validate:"required"`
	Gender                string         `json:"gender" validate:"required"`
	Age                   int            `json:"age" validate:"gte=10,lte=100"`
	AgeGroup              string         `json:"ageGroup"`
	Country               string         `json:"country"`
	PlatformType          string         `json:"platformType" validate:"required"`
	AvgDailyUsageHours    float64        `json:"avgDailyUsageHours" validate:"gte=0,lte=24"`
	UsageDurationCategory string         `json:"usageDurationCategory"`
	AddictedScore         float64        `json:"addictedScore" validate:"gte=0,lte=10"`
	AddictionLevel        string         `json:"addictionLevel"`
	HighRiskAddiction     bool           `json:"highRiskAddiction"`
	MentalHealthScore     float64        `json:"mentalHealthScore" validate:"gte=0,lte=10"`
	MentalHealthDetail    string         `json:"mentalHealthDetail"`
	SleepHoursPerNight    float64        `json:"sleepHoursPerNight" validate:"gte=0,lte=24"`
	SleepQualityDetail    string         `json:"sleepQualityDetail"`
	Vulnerable            VulnerableTags `json:"vulnerable"`
	VulnerableGroup       string         `json:"vulnerableGroup"`
	AcademicImpactLabel   string         `json:"academicImpactLabel"`
	AcademicImpacted      bool           `json:"academicImpacted"`
}

// NullFloat is a mean or ratio that may be undefined, e.g. over no records.
// It encodes as JSON null when not valid.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float wraps a defined value. NaN and infinities are treated as undefined.
func Float(v float64) NullFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NullFloat{}
	}
	return NullFloat{Float64: v, Valid: true}
}

// NA is the undefined value.
var NA = NullFloat{}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}
