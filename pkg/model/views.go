package model

// ReferenceLine is a threshold drawn across a chart axis.
type ReferenceLine struct {
	Axis  string  `json:"axis"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ScatterPoint is one record in the usage versus mental health chart.
type ScatterPoint struct {
	StudentID          string  `json:"studentId"`
	UsageHours         float64 `json:"usageHours"`
	MentalHealthScore  float64 `json:"mentalHealthScore"`
	SleepHoursPerNight float64 `json:"sleepHoursPerNight"`
	AddictionLevel     string  `json:"addictionLevel"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	PlatformType       string  `json:"platformType"`
}

// OverviewKPIs are the headline metrics of the main page.
type OverviewKPIs struct {
	Total      int   `json:"total"`
	HighRisk   Share `json:"highRisk"`
	Vulnerable Share `json:"vulnerable"`
	HighUsage  Share `json:"highUsage"`
}

// OverviewView is the main dashboard page.
type OverviewView struct {
	TotalRecords     int             `json:"totalRecords"`
	FilteredRecords  int             `json:"filteredRecords"`
	Countries        int             `json:"countries"`
	KPIs             OverviewKPIs    `json:"kpis"`
	AddictionLevels  []CategoryCount `json:"addictionLevels"`
	TopPlatforms     []CategoryCount `json:"topPlatforms"`
	AgeGenderHeatmap Pivot           `json:"ageGenderHeatmap"`
	UsageVsMental    []ScatterPoint  `json:"usageVsMental"`
	ScatterTrend     TrendLine       `json:"scatterTrend"`
	ScatterLines     []ReferenceLine `json:"scatterLines"`
	MentalHealth     []CategoryCount `json:"mentalHealth"`
	SleepQuality     []CategoryCount `json:"sleepQuality"`
	Usage            Summary         `json:"usage"`
	MentalHealthStat Summary         `json:"mentalHealthStats"`
	Sleep            Summary         `json:"sleep"`
}

// PriorityRow is one entry of the high priority list.
type PriorityRow struct {
	StudentID           string  `json:"studentId"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	VulnerableGroup     string  `json:"vulnerableGroup"`
	PlatformType        string  `json:"platformType"`
	AvgDailyUsageHours  float64 `json:"avgDailyUsageHours"`
	AddictedScore       float64 `json:"addictedScore"`
	MentalHealthScore   float64 `json:"mentalHealthScore"`
	AcademicImpactLabel string  `json:"academicImpactLabel"`
	Highlight           string  `json:"highlight,omitempty"`
}

// Highlight bands for priority rows.
const (
	HighlightCritical = "critical"
	HighlightHigh     = "high"
)

// ComparisonRow compares one metric between vulnerable and other students.
type ComparisonRow struct {
	Metric        string    `json:"metric"`
	Unit          string    `json:"unit"`
	Vulnerable    NullFloat `json:"vulnerable"`
	NonVulnerable NullFloat `json:"nonVulnerable"`
}

// VulnerableKPIs are the headline metrics of the vulnerable groups page.
type VulnerableKPIs struct {
	YoungWomen    Share     `json:"youngWomen"`
	VeryYoungMen  Share     `json:"veryYoungMen"`
	AvgAddiction  NullFloat `json:"avgAddiction"`
	HighRisk      Share     `json:"highRisk"`
	VulnerableAll int       `json:"vulnerableAll"`
}

// VulnerableView is the vulnerable groups page.
type VulnerableView struct {
	TotalRecords     int             `json:"totalRecords"`
	KPIs             VulnerableKPIs  `json:"kpis"`
	Breakdown        []CategoryCount `json:"breakdown"`
	AddictionByGroup []PairCount     `json:"addictionByGroup"`
	TopPlatforms     []CategoryCount `json:"topPlatforms"`
	MentalHealth     []CategoryCount `json:"mentalHealth"`
	Priority         []PriorityRow   `json:"priority"`
	Comparison       []ComparisonRow `json:"comparison"`
	Recommendations  []string        `json:"recommendations"`
}

// Impact matrix quadrants.
const (
	QuadrantIdeal   = "IDEAL"
	QuadrantConcern = "CONCERN"
	QuadrantMonitor = "MONITOR"
	QuadrantDanger  = "DANGER"
)

// ImpactPoint places one platform on the usage × mental health matrix.
type ImpactPoint struct {
	Platform        string  `json:"platform"`
	Users           int     `json:"users"`
	AvgUsageHours   float64 `json:"avgUsageHours"`
	AvgMentalHealth float64 `json:"avgMentalHealth"`
	AvgAddiction    float64 `json:"avgAddiction"`
	Quadrant        string  `json:"quadrant"`
}

// RankedChart is a per-group mean series with its reference line.
type RankedChart struct {
	Values []GroupValue   `json:"values"`
	Line   *ReferenceLine `json:"line,omitempty"`
}

// PlatformView is the platform comparison page.
type PlatformView struct {
	Available      []string      `json:"available"`
	Selected       []string      `json:"selected"`
	Stats          []GroupStats  `json:"stats"`
	Usage          RankedChart   `json:"usage"`
	Addiction      RankedChart   `json:"addiction"`
	MentalHealth   RankedChart   `json:"mentalHealth"`
	Sleep          RankedChart   `json:"sleep"`
	ImpactMatrix   []ImpactPoint `json:"impactMatrix"`
	AddictionLevel []PairCount   `json:"addictionLevels"`
	Riskiest       []GroupValue  `json:"riskiest"`
	Safest         []GroupValue  `json:"safest"`
}

// FilterOptions lists the selectable values of each filter control.
type FilterOptions struct {
	Genders         []string `json:"genders"`
	AgeGroups       []string `json:"ageGroups"`
	Platforms       []string `json:"platforms"`
	AddictionLevels []string `json:"addictionLevels"`
}
