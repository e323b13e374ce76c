package dashboard

import (
	"context"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// TopPlatformsOverview is how many platforms the overview ranks.
const TopPlatformsOverview = 7

// Overview builds the main page for the records matching spec.
func (s *Service) Overview(ctx context.Context, spec analytics.FilterSpec) (model.OverviewView, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return model.OverviewView{}, err
	}
	return cached(ctx, s, ds, ViewOverview, spec.Key(), func() model.OverviewView {
		return BuildOverview(ds.Records, spec)
	}), nil
}

// BuildOverview computes the overview from the full record set.
func BuildOverview(all []model.StudentRecord, spec analytics.FilterSpec) model.OverviewView {
	filtered := analytics.Filter(all, spec)
	total := analytics.Count(filtered)

	return model.OverviewView{
		TotalRecords:    len(all),
		FilteredRecords: total,
		Countries:       len(analytics.Distinct(all, analytics.Country)),
		KPIs: model.OverviewKPIs{
			Total:      total,
			HighRisk:   analytics.ShareOf(filtered, isHighRisk, total),
			Vulnerable: analytics.ShareOf(filtered, isVulnerable, total),
			HighUsage:  analytics.ShareOf(filtered, isHighUsage, total),
		},
		AddictionLevels:  analytics.ValueCounts(filtered, analytics.AddictionLevel),
		TopPlatforms:     analytics.TopK(filtered, analytics.PlatformType, TopPlatformsOverview),
		AgeGenderHeatmap: analytics.PivotMean(filtered, analytics.AgeGroup, analytics.Gender, analytics.AddictedScore),
		UsageVsMental:    scatter(filtered),
		ScatterTrend:     analytics.Regression(filtered, analytics.AvgDailyUsageHours, analytics.MentalHealthScore),
		ScatterLines: []model.ReferenceLine{
			{Axis: "y", Value: model.PoorMentalHealthScore, Label: "Threshold Kesehatan Mental Buruk"},
			{Axis: "x", Value: model.HighUsageHours, Label: "Threshold Penggunaan Tinggi"},
		},
		MentalHealth:     analytics.ValueCounts(filtered, analytics.MentalHealthDetail),
		SleepQuality:     analytics.OrderBy(analytics.ValueCounts(filtered, analytics.SleepQualityDetail), model.SleepQualityOrder),
		Usage:            analytics.Describe(filtered, analytics.AvgDailyUsageHours),
		MentalHealthStat: analytics.Describe(filtered, analytics.MentalHealthScore),
		Sleep:            analytics.Describe(filtered, analytics.SleepHoursPerNight),
	}
}

func scatter(records []model.StudentRecord) []model.ScatterPoint {
	out := make([]model.ScatterPoint, len(records))
	for i, r := range records {
		out[i] = model.ScatterPoint{
			StudentID:          r.StudentID,
			UsageHours:         r.AvgDailyUsageHours,
			MentalHealthScore:  r.MentalHealthScore,
			SleepHoursPerNight: r.SleepHoursPerNight,
			AddictionLevel:     r.AddictionLevel,
			Gender:             r.Gender,
			Age:                r.Age,
			PlatformType:       r.PlatformType,
		}
	}
	return out
}

func isHighRisk(r model.StudentRecord) bool   { return r.HighRiskAddiction }
func isVulnerable(r model.StudentRecord) bool { return r.Vulnerable.Any() }
func isHighUsage(r model.StudentRecord) bool  { return r.UsageDurationCategory == model.UsageHigh }
func isAcademic(r model.StudentRecord) bool   { return r.AcademicImpacted }
