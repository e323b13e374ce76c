package dashboard

import (
	"context"
	"sort"
	"strings"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// RankingSize is how many platforms the riskiest and safest lists hold.
const RankingSize = 3

// Platforms builds the platform comparison page. A nil selection compares
// every platform; an empty one compares none.
func (s *Service) Platforms(ctx context.Context, selected []string) (model.PlatformView, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return model.PlatformView{}, err
	}
	key := analytics.FilterSpec{Platforms: selected}.Key()
	return cached(ctx, s, ds, ViewPlatforms, key, func() model.PlatformView {
		return BuildPlatforms(ds.Records, selected)
	}), nil
}

func BuildPlatforms(all []model.StudentRecord, selected []string) model.PlatformView {
	available := analytics.Distinct(all, analytics.PlatformType)
	sort.Strings(available)
	if selected == nil {
		selected = available
	}
	filtered := analytics.Filter(all, analytics.FilterSpec{Platforms: selected})
	stats := analytics.GroupStatsBy(filtered, analytics.PlatformType)

	return model.PlatformView{
		Available: available,
		Selected:  selected,
		Stats:     stats,
		Usage: ranked(filtered, analytics.AvgDailyUsageHours, analytics.Descending,
			model.ReferenceLine{Axis: "x", Value: model.HighUsageHours, Label: "Threshold 4 jam"}),
		Addiction: ranked(filtered, analytics.AddictedScore, analytics.Descending,
			model.ReferenceLine{Axis: "x", Value: model.HighRiskCutoff, Label: "Threshold Risiko Tinggi"}),
		MentalHealth: ranked(filtered, analytics.MentalHealthScore, analytics.Ascending,
			model.ReferenceLine{Axis: "x", Value: model.PoorMentalHealthScore, Label: "Threshold Mental Health Buruk"}),
		Sleep: ranked(filtered, analytics.SleepHoursPerNight, analytics.Ascending,
			model.ReferenceLine{Axis: "x", Value: model.MinimumSleepHours, Label: "Minimum Sleep"}),
		ImpactMatrix:   impactMatrix(stats),
		AddictionLevel: analytics.TwoWayCount(filtered, analytics.PlatformType, analytics.AddictionLevel),
		Riskiest:       analytics.TopN(filtered, analytics.PlatformType, analytics.AddictedScore, RankingSize, analytics.Descending),
		Safest:         analytics.TopN(filtered, analytics.PlatformType, analytics.AddictedScore, RankingSize, analytics.Ascending),
	}
}

// ParsePlatforms reads a platform selection from repeated or comma separated
// query values. No values at all means no selection.
func ParsePlatforms(values []string) []string {
	if values == nil {
		return nil
	}
	out := []string{}
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func ranked(records []model.StudentRecord, value analytics.NumericField, dir analytics.Direction, line model.ReferenceLine) model.RankedChart {
	return model.RankedChart{
		Values: analytics.RankGroups(analytics.GroupMean(records, analytics.PlatformType, value), dir),
		Line:   &line,
	}
}

func impactMatrix(stats []model.GroupStats) []model.ImpactPoint {
	out := make([]model.ImpactPoint, len(stats))
	for i, st := range stats {
		out[i] = model.ImpactPoint{
			Platform:        st.Group,
			Users:           st.Users,
			AvgUsageHours:   st.AvgUsageHours,
			AvgMentalHealth: st.AvgMentalHealth,
			AvgAddiction:    st.AvgAddiction,
			Quadrant:        Quadrant(st.AvgUsageHours, st.AvgMentalHealth),
		}
	}
	return out
}

// Quadrant places mean usage and mental health on the impact matrix. Usage
// above 4 hours is high; mental health below 6 is poor.
func Quadrant(usageHours, mentalHealth float64) string {
	high := usageHours > model.HighUsageHours
	poor := mentalHealth < model.PoorMentalHealthScore
	switch {
	case high && poor:
		return model.QuadrantDanger
	case high:
		return model.QuadrantConcern
	case poor:
		return model.QuadrantMonitor
	default:
		return model.QuadrantIdeal
	}
}
