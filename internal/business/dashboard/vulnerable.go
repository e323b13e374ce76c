package dashboard

import (
	"context"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// TopPlatformsVulnerable is how many platforms the vulnerable page ranks.
const TopPlatformsVulnerable = 6

// Recommendations are the intervention guidelines shown with the vulnerable
// groups analysis.
var Recommendations = []string{
	"Fokus pada perempuan usia 16-21 tahun pengguna Instagram/TikTok",
	"Program digital wellness untuk kelompok rentan",
	"Konseling kesehatan mental prioritas",
	"Monitoring penggunaan media sosial >5 jam/hari",
}

// Vulnerable builds the vulnerable groups page. It always covers the whole
// dataset; the sidebar filters only apply to the overview.
func (s *Service) Vulnerable(ctx context.Context) (model.VulnerableView, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return model.VulnerableView{}, err
	}
	return cached(ctx, s, ds, ViewVulnerable, "", func() model.VulnerableView {
		return BuildVulnerable(ds.Records)
	}), nil
}

// Priority returns the high priority list of the vulnerable subset.
func (s *Service) Priority(ctx context.Context) ([]model.PriorityRow, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return nil, err
	}
	return PriorityRows(analytics.Where(ds.Records, isVulnerable)), nil
}

func BuildVulnerable(all []model.StudentRecord) model.VulnerableView {
	vulnerable := analytics.Where(all, isVulnerable)
	others := analytics.Where(all, func(r model.StudentRecord) bool { return !r.Vulnerable.Any() })
	total := len(all)

	return model.VulnerableView{
		TotalRecords: total,
		KPIs: model.VulnerableKPIs{
			YoungWomen:    analytics.ShareOf(vulnerable, func(r model.StudentRecord) bool { return r.Vulnerable.YoungWoman }, total),
			VeryYoungMen:  analytics.ShareOf(vulnerable, func(r model.StudentRecord) bool { return r.Vulnerable.VeryYoungMan }, total),
			AvgAddiction:  analytics.Mean(vulnerable, analytics.AddictedScore),
			HighRisk:      analytics.ShareOf(vulnerable, isHighRisk, len(vulnerable)),
			VulnerableAll: len(vulnerable),
		},
		Breakdown:        analytics.ValueCounts(vulnerable, analytics.VulnerableGroup),
		AddictionByGroup: analytics.TwoWayCount(vulnerable, analytics.VulnerableGroup, analytics.AddictionLevel),
		TopPlatforms:     analytics.TopK(vulnerable, analytics.PlatformType, TopPlatformsVulnerable),
		MentalHealth:     analytics.ValueCounts(vulnerable, analytics.MentalHealthDetail),
		Priority:         PriorityRows(vulnerable),
		Comparison:       Compare(vulnerable, others),
		Recommendations:  Recommendations,
	}
}

// PriorityRows lists the high priority records with their highlight band.
func PriorityRows(records []model.StudentRecord) []model.PriorityRow {
	priority := analytics.HighPriority(records)
	out := make([]model.PriorityRow, len(priority))
	for i, r := range priority {
		out[i] = model.PriorityRow{
			StudentID:           r.StudentID,
			Age:                 r.Age,
			Gender:              r.Gender,
			VulnerableGroup:     r.VulnerableGroup,
			PlatformType:        r.PlatformType,
			AvgDailyUsageHours:  r.AvgDailyUsageHours,
			AddictedScore:       r.AddictedScore,
			MentalHealthScore:   r.MentalHealthScore,
			AcademicImpactLabel: r.AcademicImpactLabel,
			Highlight:           Highlight(r.AddictedScore),
		}
	}
	return out
}

// Highlight bands an addiction score for display.
func Highlight(score float64) string {
	switch {
	case score >= model.HighlightCriticalScore:
		return model.HighlightCritical
	case score >= model.PriorityScoreCutoff:
		return model.HighlightHigh
	default:
		return ""
	}
}

// Compare contrasts the four headline means and two rates between the two
// groups. Values over an empty group are NA.
func Compare(a, b []model.StudentRecord) []model.ComparisonRow {
	mean := func(f analytics.NumericField, unit, metric string) model.ComparisonRow {
		return model.ComparisonRow{Metric: metric, Unit: unit, Vulnerable: analytics.Mean(a, f), NonVulnerable: analytics.Mean(b, f)}
	}
	rate := func(pred func(model.StudentRecord) bool, metric string) model.ComparisonRow {
		return model.ComparisonRow{Metric: metric, Unit: "%", Vulnerable: percentOf(a, pred), NonVulnerable: percentOf(b, pred)}
	}
	return []model.ComparisonRow{
		mean(analytics.AvgDailyUsageHours, "jam/hari", "Rata-rata Penggunaan"),
		mean(analytics.AddictedScore, "skor", "Rata-rata Addiction Score"),
		mean(analytics.MentalHealthScore, "skor", "Rata-rata Mental Health Score"),
		mean(analytics.SleepHoursPerNight, "jam", "Rata-rata Jam Tidur"),
		rate(isHighRisk, "Risiko Tinggi"),
		rate(isAcademic, "Terdampak Akademik"),
	}
}

func percentOf(records []model.StudentRecord, pred func(model.StudentRecord) bool) model.NullFloat {
	if len(records) == 0 {
		return model.NA
	}
	return model.Float(analytics.Percentage(analytics.CountWhere(records, pred), len(records)))
}
