package model

// Bergen Social Media Addiction Scale cutoffs, scaled from the 6–30 raw
// score range to the 0–10 scale used by the dataset.
const (
	// HighRiskCutoff is the monothetic cutoff (26/30).
	HighRiskCutoff = 8.67
	// ModerateRiskCutoff is the polythetic cutoff (19/30).
	ModerateRiskCutoff = 19.0 / 30.0 * 10
	// PriorityScoreCutoff admits records into the priority list together
	// with the high-risk flag. It is intentionally independent of HighRiskCutoff.
	PriorityScoreCutoff = 8.0
	// HighlightCriticalScore marks the most severe rows in exports.
	HighlightCriticalScore = 9.0
)

const (
	HighUsageHours     = 4.0
	ModerateUsageHours = 2.0

	// PoorMentalHealthScore splits the impact matrix vertically.
	PoorMentalHealthScore = 6.0
	MinimumSleepHours     = 6.0

	YoungWomanMaxAge   = 21
	VeryYoungManMaxAge = 19
)

// Category sentinel and labels as they appear in the source data.
const (
	AllSentinel = "Semua"

	GenderFemale = "Perempuan"
	GenderMale   = "Laki-laki"

	AddictionLow      = "Risiko Rendah"
	AddictionModerate = "Risiko Sedang"
	AddictionHigh     = "Risiko Tinggi"

	UsageLow      = "Penggunaan Rendah (<2 jam)"
	UsageModerate = "Penggunaan Sedang (2-4 jam)"
	UsageHigh     = "Penggunaan Tinggi (>4 jam)"

	MentalVeryPoor = "Sangat Buruk (1-3)"
	MentalPoor     = "Buruk (4-5)"
	MentalFair     = "Sedang (6-7)"
	MentalGood     = "Baik (8-10)"

	SleepVeryShort = "Sangat Kurang (<5h)"
	SleepShort     = "Kurang (5-6h)"
	SleepFair      = "Cukup (6-7h)"
	SleepGood      = "Baik (7-9h)"
	SleepExcessive = "Berlebihan (>9h)"

	AgeUnder16 = "<16"
	Age16to19  = "16-19"
	Age20to21  = "20-21"
	Age22to23  = "22-23"
	Age24Plus  = "24+"

	VulnerableYoungWoman   = "Ya - Perempuan Muda (≤21)"
	VulnerableVeryYoungMan = "Ya - Laki-laki Sangat Muda (≤19)"
	VulnerableNone         = "Tidak"

	HighRiskYes = "Ya"
	HighRiskNo  = "Tidak"

	AcademicImpacted    = "Terdampak"
	AcademicNotImpacted = "Tidak Terdampak"
)

// Natural orderings for banded labels.
var (
	AddictionLevelOrder = []string{AddictionLow, AddictionModerate, AddictionHigh}
	UsageOrder          = []string{UsageLow, UsageModerate, UsageHigh}
	MentalHealthOrder   = []string{MentalVeryPoor, MentalPoor, MentalFair, MentalGood}
	SleepQualityOrder   = []string{SleepVeryShort, SleepShort, SleepFair, SleepGood, SleepExcessive}
	AgeGroupOrder       = []string{AgeUnder16, Age16to19, Age20to21, Age22to23, Age24Plus}
)

// AddictionLevelFor maps an addiction score to its risk band.
func AddictionLevelFor(score float64) string {
	switch {
	case score >= HighRiskCutoff:
		return AddictionHigh
	case score >= ModerateRiskCutoff:
		return AddictionModerate
	default:
		return AddictionLow
	}
}

// IsHighRisk reports whether score is at or above the BSMAS high-risk cutoff.
func IsHighRisk(score float64) bool {
	return score >= HighRiskCutoff
}

// IsPriority reports whether a record belongs on the priority list.
func IsPriority(r StudentRecord) bool {
	return r.HighRiskAddiction || r.AddictedScore >= PriorityScoreCutoff
}

func UsageCategoryFor(hours float64) string {
	switch {
	case hours > HighUsageHours:
		return UsageHigh
	case hours >= ModerateUsageHours:
		return UsageModerate
	default:
		return UsageLow
	}
}

// MentalHealthDetailFor buckets a 1–10 score into 1-3, 4-5, 6-7 and 8-10.
// Fractional scores fall into the band of their integer floor.
func MentalHealthDetailFor(score float64) string {
	switch {
	case score < 4:
		return MentalVeryPoor
	case score < 6:
		return MentalPoor
	case score < 8:
		return MentalFair
	default:
		return MentalGood
	}
}

func SleepQualityFor(hours float64) string {
	switch {
	case hours < 5:
		return SleepVeryShort
	case hours < 6:
		return SleepShort
	case hours < 7:
		return SleepFair
	case hours <= 9:
		return SleepGood
	default:
		return SleepExcessive
	}
}

// AgeGroupFor buckets an age for rows that carry no Age_Group label.
func AgeGroupFor(age int) string {
	switch {
	case age < 16:
		return AgeUnder16
	case age <= 19:
		return Age16to19
	case age <= 21:
		return Age20to21
	case age <= 23:
		return Age22to23
	default:
		return Age24Plus
	}
}

// VulnerableTagsFor derives subgroup membership from gender and age.
func VulnerableTagsFor(gender string, age int) VulnerableTags {
	return VulnerableTags{
		YoungWoman:   gender == GenderFemale && age <= YoungWomanMaxAge,
		VeryYoungMan: gender == GenderMale && age <= VeryYoungManMaxAge,
	}
}

// Label renders the tags the way the source file spells Vulnerable_Group.
func (v VulnerableTags) Label() string {
	switch {
	case v.YoungWoman:
		return VulnerableYoungWoman
	case v.VeryYoungMan:
		return VulnerableVeryYoungMan
	default:
		return VulnerableNone
	}
}
