package analytics

import (
	"sort"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// Direction orders ranked results.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// Count returns the number of records.
func Count(records []model.StudentRecord) int {
	return len(records)
}

// CountWhere returns the number of records satisfying pred.
func CountWhere(records []model.StudentRecord, pred func(model.StudentRecord) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Percentage returns subset/total*100, or 0 when total is 0.
func Percentage(subset, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(subset) / float64(total) * 100
}

// ShareOf counts records satisfying pred together with their percentage of
// the reference total.
func ShareOf(records []model.StudentRecord, pred func(model.StudentRecord) bool, total int) model.Share {
	n := CountWhere(records, pred)
	return model.Share{Count: n, Percent: Percentage(n, total)}
}

// Mean returns the arithmetic mean of f, NA over no records.
func Mean(records []model.StudentRecord, f NumericField) model.NullFloat {
	if len(records) == 0 {
		return model.NA
	}
	var sum float64
	for _, r := range records {
		sum += f.Get(r)
	}
	return model.Float(sum / float64(len(records)))
}

// ValueCounts tallies each observed category, most frequent first. Equal
// counts keep the order in which the categories were first seen.
func ValueCounts(records []model.StudentRecord, f CategoryField) []model.CategoryCount {
	index := make(map[string]int)
	var out []model.CategoryCount
	for _, r := range records {
		v := f.Get(r)
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, model.CategoryCount{Category: v})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if out == nil {
		out = []model.CategoryCount{}
	}
	return out
}

// TopK returns the k most frequent categories of f.
func TopK(records []model.StudentRecord, f CategoryField, k int) []model.CategoryCount {
	counts := ValueCounts(records, f)
	if k < 0 {
		k = 0
	}
	if len(counts) > k {
		counts = counts[:k]
	}
	return counts
}

// OrderBy rearranges counts into the given label order, dropping labels that
// were not observed. Observed labels missing from order are appended in their
// existing order.
func OrderBy(counts []model.CategoryCount, order []string) []model.CategoryCount {
	byLabel := make(map[string]model.CategoryCount, len(counts))
	for _, c := range counts {
		byLabel[c.Category] = c
	}
	out := make([]model.CategoryCount, 0, len(counts))
	placed := make(map[string]struct{}, len(order))
	for _, label := range order {
		if c, ok := byLabel[label]; ok {
			out = append(out, c)
			placed[label] = struct{}{}
		}
	}
	for _, c := range counts {
		if _, ok := placed[c.Category]; !ok {
			out = append(out, c)
		}
	}
	return out
}

type groupAcc struct {
	key   string
	sum   float64
	count int
}

func accumulate(records []model.StudentRecord, group CategoryField, value NumericField) []groupAcc {
	index := make(map[string]int)
	var accs []groupAcc
	for _, r := range records {
		k := group.Get(r)
		i, ok := index[k]
		if !ok {
			i = len(accs)
			index[k] = i
			accs = append(accs, groupAcc{key: k})
		}
		accs[i].sum += value.Get(r)
		accs[i].count++
	}
	return accs
}

// GroupMean returns the mean of value for each group present in records, in
// first-seen group order. Groups without records produce no entry.
func GroupMean(records []model.StudentRecord, group CategoryField, value NumericField) []model.GroupValue {
	accs := accumulate(records, group, value)
	out := make([]model.GroupValue, 0, len(accs))
	for _, a := range accs {
		out = append(out, model.GroupValue{Group: a.key, Value: a.sum / float64(a.count), Count: a.count})
	}
	return out
}

// GroupStatsBy computes user counts and the usage, addiction, mental health
// and sleep means per group, largest group first.
func GroupStatsBy(records []model.StudentRecord, group CategoryField) []model.GroupStats {
	usage := GroupMean(records, group, AvgDailyUsageHours)
	addiction := GroupMean(records, group, AddictedScore)
	mental := GroupMean(records, group, MentalHealthScore)
	sleep := GroupMean(records, group, SleepHoursPerNight)

	out := make([]model.GroupStats, len(usage))
	for i := range usage {
		out[i] = model.GroupStats{
			Group:           usage[i].Group,
			Users:           usage[i].Count,
			AvgUsageHours:   usage[i].Value,
			AvgAddiction:    addiction[i].Value,
			AvgMentalHealth: mental[i].Value,
			AvgSleepHours:   sleep[i].Value,
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Users > out[j].Users })
	return out
}

// RankGroups sorts a copy of values by mean. Ties keep their input order.
func RankGroups(values []model.GroupValue, dir Direction) []model.GroupValue {
	out := append([]model.GroupValue(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Ascending {
			return out[i].Value < out[j].Value
		}
		return out[i].Value > out[j].Value
	})
	if out == nil {
		out = []model.GroupValue{}
	}
	return out
}

// TopN ranks groups by their mean of value and keeps the first n.
func TopN(records []model.StudentRecord, group CategoryField, value NumericField, n int, dir Direction) []model.GroupValue {
	ranked := RankGroups(GroupMean(records, group, value), dir)
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TwoWayCount cross-tabulates a and b, one row per observed pair in
// first-seen order.
func TwoWayCount(records []model.StudentRecord, a, b CategoryField) []model.PairCount {
	type pair struct{ a, b string }
	index := make(map[pair]int)
	out := []model.PairCount{}
	for _, r := range records {
		k := pair{a.Get(r), b.Get(r)}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, model.PairCount{A: k.a, B: k.b})
		}
		out[i].Count++
	}
	return out
}

// PivotMean tabulates the mean of value for every (row, col) combination.
// Labels follow the fields' natural order, unknown labels sorted after it.
// Combinations without records are NA.
func PivotMean(records []model.StudentRecord, row, col CategoryField, value NumericField) model.Pivot {
	rows := orderLabels(Distinct(records, row), row.Order)
	cols := orderLabels(Distinct(records, col), col.Order)

	rowIdx := indexOf(rows)
	colIdx := indexOf(cols)
	sums := make([][]float64, len(rows))
	counts := make([][]int, len(rows))
	for i := range rows {
		sums[i] = make([]float64, len(cols))
		counts[i] = make([]int, len(cols))
	}
	for _, r := range records {
		i, j := rowIdx[row.Get(r)], colIdx[col.Get(r)]
		sums[i][j] += value.Get(r)
		counts[i][j]++
	}

	cells := make([][]model.NullFloat, len(rows))
	for i := range rows {
		cells[i] = make([]model.NullFloat, len(cols))
		for j := range cols {
			if counts[i][j] == 0 {
				cells[i][j] = model.NA
				continue
			}
			cells[i][j] = model.Float(sums[i][j] / float64(counts[i][j]))
		}
	}
	return model.Pivot{Rows: rows, Cols: cols, Cells: cells}
}

// HighPriority returns records flagged high risk or scoring at least the
// priority cutoff, highest score first. Equal scores keep input order.
func HighPriority(records []model.StudentRecord) []model.StudentRecord {
	out := Where(records, model.IsPriority)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AddictedScore > out[j].AddictedScore })
	return out
}

func indexOf(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return idx
}

// orderLabels puts observed labels in preferred order, followed by the rest sorted.
func orderLabels(observed, preferred []string) []string {
	present := make(map[string]struct{}, len(observed))
	for _, l := range observed {
		present[l] = struct{}{}
	}
	out := make([]string, 0, len(observed))
	for _, l := range preferred {
		if _, ok := present[l]; ok {
			out = append(out, l)
			delete(present, l)
		}
	}
	rest := make([]string, 0, len(present))
	for l := range present {
		rest = append(rest, l)
	}
	sort.Strings(rest)
	return append(out, rest...)
}
