package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/util"
)

// Warning keys that are not plain label mismatches.
const (
	// WarnDuplicateID counts rows whose Student_ID was already seen.
	WarnDuplicateID = "Student_ID (duplicate)"
	// WarnAgeGroupConflict counts rows whose Age_Group differs from the label
	// an earlier row gave the same age.
	WarnAgeGroupConflict = "Age_Group (inconsistent)"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldColumns maps StudentRecord field names to source columns for error reporting.
var fieldColumns = map[string]string{
	"StudentID":          model.ColStudentID,
	"Gender":             model.ColGender,
	"Age":                model.ColAge,
	"PlatformType":       model.ColPlatformType,
	"AvgDailyUsageHours": model.ColAvgDailyUsageHours,
	"AddictedScore":      model.ColAddictedScore,
	"MentalHealthScore":  model.ColMentalHealthScore,
	"SleepHoursPerNight": model.ColSleepHoursPerNight,
}

// BuildOptions tunes how strictly rows are accepted.
type BuildOptions struct {
	// Strict fails the whole load when any row is rejected.
	Strict bool
}

// Build parses and validates every row, derives the banded labels and reports
// data-quality problems. Rows that cannot be parsed are left out and listed
// in the report. Stored labels that disagree with the derived ones are kept
// as derived and counted as warnings per column.
func Build(table Table, opts BuildOptions) ([]model.StudentRecord, model.LoadReport, error) {
	report := model.LoadReport{Rows: len(table.Rows), Warnings: map[string]int{}}

	if missing := missingColumns(table.Columns); len(missing) > 0 {
		return nil, report, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	records := make([]model.StudentRecord, 0, len(table.Rows))
	seen := make(map[string]struct{}, len(table.Rows))
	ageLabels := make(map[int]string)
	for _, row := range table.Rows {
		rec, errs := parseRow(row)
		if len(errs) > 0 {
			report.Rejected = append(report.Rejected, errs...)
			continue
		}
		if _, dup := seen[rec.StudentID]; dup {
			report.Warnings[WarnDuplicateID]++
		}
		seen[rec.StudentID] = struct{}{}
		if label, ok := ageLabels[rec.Age]; !ok {
			ageLabels[rec.Age] = rec.AgeGroup
		} else if label != rec.AgeGroup {
			report.Warnings[WarnAgeGroupConflict]++
		}
		for _, col := range labelMismatches(row, rec) {
			report.Warnings[col]++
		}
		records = append(records, rec)
	}
	report.Accepted = len(records)
	if len(report.Warnings) == 0 {
		report.Warnings = nil
	}

	if opts.Strict && len(report.Rejected) > 0 {
		first := report.Rejected[0]
		return nil, report, fmt.Errorf("%w: %d of %d rows, first at line %d: %s",
			ErrRejectedRows, report.Rows-report.Accepted, report.Rows, first.Line, first.Reason)
	}
	return records, report, nil
}

func missingColumns(columns []string) []string {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}
	var missing []string
	for _, c := range model.RequiredColumns {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// parseRow builds a fully derived record, or every problem found in the row.
func parseRow(row model.RawRow) (model.StudentRecord, []model.RowError) {
	var errs []model.RowError
	fail := func(col, reason string) {
		errs = append(errs, model.RowError{Line: row.Line, Column: col, Reason: reason})
	}
	number := func(col string) float64 {
		v, err := parseFloat(row.Fields[col])
		if err != nil {
			fail(col, err.Error())
		}
		return v
	}

	rec := model.StudentRecord{
		StudentID:           util.CleanLabel(row.Fields[model.ColStudentID]),
		Gender:              util.CanonicalGender(row.Fields[model.ColGender]),
		AgeGroup:            util.CleanLabel(row.Fields[model.ColAgeGroup]),
		Country:             util.CleanLabel(row.Fields[model.ColCountry]),
		PlatformType:        util.CleanLabel(row.Fields[model.ColPlatformType]),
		AvgDailyUsageHours:  number(model.ColAvgDailyUsageHours),
		AddictedScore:       number(model.ColAddictedScore),
		MentalHealthScore:   number(model.ColMentalHealthScore),
		SleepHoursPerNight:  number(model.ColSleepHoursPerNight),
		AcademicImpactLabel: util.CleanLabel(row.Fields[model.ColAcademicImpactLabel]),
	}
	age, err := parseAge(row.Fields[model.ColAge])
	if err != nil {
		fail(model.ColAge, err.Error())
	}
	rec.Age = age
	if len(errs) > 0 {
		return rec, errs
	}

	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fail("", err.Error())
			return rec, errs
		}
		for _, fe := range verrs {
			fail(fieldColumns[fe.StructField()], describeViolation(fe))
		}
		return rec, errs
	}

	derive(&rec)
	return rec, nil
}

// derive fills every banded label from the raw measurements. The age group
// is the survey's own label and is only derived when the row has none.
func derive(rec *model.StudentRecord) {
	if rec.AgeGroup == "" {
		rec.AgeGroup = model.AgeGroupFor(rec.Age)
	}
	rec.UsageDurationCategory = model.UsageCategoryFor(rec.AvgDailyUsageHours)
	rec.AddictionLevel = model.AddictionLevelFor(rec.AddictedScore)
	rec.HighRiskAddiction = model.IsHighRisk(rec.AddictedScore)
	rec.MentalHealthDetail = model.MentalHealthDetailFor(rec.MentalHealthScore)
	rec.SleepQualityDetail = model.SleepQualityFor(rec.SleepHoursPerNight)
	rec.Vulnerable = model.VulnerableTagsFor(rec.Gender, rec.Age)
	rec.VulnerableGroup = rec.Vulnerable.Label()
	rec.AcademicImpacted = strings.EqualFold(rec.AcademicImpactLabel, model.AcademicImpacted)
}

// labelMismatches lists the optional label columns whose stored value
// disagrees with the derived one. Absent or empty labels are not compared.
func labelMismatches(row model.RawRow, rec model.StudentRecord) []string {
	highRisk := model.HighRiskNo
	if rec.HighRiskAddiction {
		highRisk = model.HighRiskYes
	}
	derived := []struct {
		col  string
		want string
	}{
		{model.ColUsageDurationCategory, rec.UsageDurationCategory},
		{model.ColAddictionLevel, rec.AddictionLevel},
		{model.ColHighRiskAddiction, highRisk},
		{model.ColMentalHealthDetail, rec.MentalHealthDetail},
		{model.ColSleepQualityDetail, rec.SleepQualityDetail},
		{model.ColVulnerableGroup, rec.VulnerableGroup},
	}
	var out []string
	for _, d := range derived {
		stored := util.CleanLabel(row.Fields[d.col])
		if stored != "" && stored != d.want {
			out = append(out, d.col)
		}
	}
	return out
}

// parseFloat accepts a decimal comma and rejects blanks, NA markers and
// non-finite values.
func parseFloat(raw string) (float64, error) {
	s := util.CleanLabel(raw)
	if isMissing(s) {
		return 0, errors.New("missing value")
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return v, nil
}

// parseAge accepts whole numbers written as floats, e.g. "19.0".
func parseAge(raw string) (int, error) {
	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return int(v), nil
}

func isMissing(s string) bool {
	switch strings.ToLower(s) {
	case "", "na", "nan", "null", "<nil>":
		return true
	}
	return false
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing value"
	case "gte":
		return fmt.Sprintf("%v is below %s", fe.Value(), fe.Param())
	case "lte":
		return fmt.Sprintf("%v is above %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
