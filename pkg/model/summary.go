package model

import "time"

// CategoryCount is one entry of a frequency table.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// GroupValue is the mean of a numeric field within one group.
type GroupValue struct {
	Group string  `json:"group"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// PairCount is one cell of a cross-tabulation.
type PairCount struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// Pivot is a row × column table of means. Cells[i][j] belongs to Rows[i], Cols[j].
type Pivot struct {
	Rows  []string      `json:"rows"`
	Cols  []string      `json:"cols"`
	Cells [][]NullFloat `json:"cells"`
}

// Cell returns the mean at (row, col), NA if either label is absent.
func (p Pivot) Cell(row, col string) NullFloat {
	for i, r := range p.Rows {
		if r != row {
			continue
		}
		for j, c := range p.Cols {
			if c == col {
				return p.Cells[i][j]
			}
		}
	}
	return NA
}

// Summary describes the distribution of a numeric field.
type Summary struct {
	Count int       `json:"count"`
	Mean  NullFloat `json:"mean"`
	Std   NullFloat `json:"std"`
	Min   NullFloat `json:"min"`
	P25   NullFloat `json:"p25"`
	P50   NullFloat `json:"p50"`
	P75   NullFloat `json:"p75"`
	Max   NullFloat `json:"max"`
}

// TrendLine is an ordinary least squares fit y = Intercept + Slope*x.
type TrendLine struct {
	Intercept NullFloat `json:"intercept"`
	Slope     NullFloat `json:"slope"`
	RSquared  NullFloat `json:"rSquared"`
}

// GroupStats holds the per-group user count and the four headline means.
type GroupStats struct {
	Group           string  `json:"group"`
	Users           int     `json:"users"`
	AvgUsageHours   float64 `json:"avgUsageHours"`
	AvgAddiction    float64 `json:"avgAddiction"`
	AvgMentalHealth float64 `json:"avgMentalHealth"`
	AvgSleepHours   float64 `json:"avgSleepHours"`
}

// Share is a count together with its percentage of a reference total.
type Share struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RowError explains why a source row was rejected.
type RowError struct {
	Line   int    `json:"line"`
	Column string `json:"column,omitempty"`
	Reason string `json:"reason"`
}

// LoadReport summarises data quality of one load.
type LoadReport struct {
	Rows     int            `json:"rows"`
	Accepted int            `json:"accepted"`
	Rejected []RowError     `json:"rejected,omitempty"`
	Warnings map[string]int `json:"warnings,omitempty"`
}

// DatasetInfo describes the snapshot currently served.
type DatasetInfo struct {
	Source      string     `json:"source"`
	Fingerprint string     `json:"fingerprint"`
	LoadedAt    time.Time  `json:"loadedAt"`
	Records     int        `json:"records"`
	Report      LoadReport `json:"report"`
}
