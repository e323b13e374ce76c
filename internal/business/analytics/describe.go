package analytics

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// Describe summarises the distribution of f. Quartiles interpolate linearly
// between the closest ranks, the way spreadsheet and pandas summaries do.
// Every statistic is NA over no records, and the standard deviation needs at
// least two.
func Describe(records []model.StudentRecord, f NumericField) model.Summary {
	if len(records) == 0 {
		return model.Summary{}
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = f.Get(r)
	}
	s := series.Floats(values)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := model.Summary{
		Count: len(values),
		Mean:  model.Float(s.Mean()),
		Min:   model.Float(s.Min()),
		P25:   model.Float(quantile(sorted, 0.25)),
		P50:   model.Float(quantile(sorted, 0.5)),
		P75:   model.Float(quantile(sorted, 0.75)),
		Max:   model.Float(s.Max()),
	}
	if len(values) > 1 {
		sum.Std = model.Float(s.StdDev())
	}
	return sum
}

// quantile interpolates between the order statistics around rank (n-1)p of
// sorted values.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}
