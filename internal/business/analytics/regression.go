package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// Regression fits y against x by ordinary least squares. The fit is NA with
// fewer than two records or when x does not vary.
func Regression(records []model.StudentRecord, x, y NumericField) model.TrendLine {
	if len(records) < 2 {
		return model.TrendLine{}
	}
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = x.Get(r)
		ys[i] = y.Get(r)
	}
	if stat.Variance(xs, nil) == 0 {
		return model.TrendLine{}
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return model.TrendLine{
		Intercept: model.Float(alpha),
		Slope:     model.Float(beta),
		RSquared:  model.Float(stat.RSquared(xs, ys, nil, alpha, beta)),
	}
}
