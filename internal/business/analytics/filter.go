package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// FilterSpec is a selection across the filter controls. A blank value or the
// "Semua" sentinel leaves a dimension unconstrained.
type FilterSpec struct {
	Gender         string `json:"gender,omitempty"`
	AgeGroup       string `json:"ageGroup,omitempty"`
	PlatformType   string `json:"platformType,omitempty"`
	AddictionLevel string `json:"addictionLevel,omitempty"`
	// Platforms is the multi-select. nil means every platform; a non-nil
	// empty slice selects nothing.
	Platforms      []string `json:"platforms,omitempty"`
	VulnerableOnly bool     `json:"vulnerableOnly,omitempty"`
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != model.AllSentinel
}

// IsZero reports whether the selection constrains nothing.
func (s FilterSpec) IsZero() bool {
	return !active(s.Gender) && !active(s.AgeGroup) && !active(s.PlatformType) &&
		!active(s.AddictionLevel) && s.Platforms == nil && !s.VulnerableOnly
}

// Key renders the selection canonically so equal selections share a cache entry.
func (s FilterSpec) Key() string {
	norm := func(v string) string {
		if !active(v) {
			return "*"
		}
		return strings.TrimSpace(v)
	}
	platforms := "*"
	if s.Platforms != nil {
		sorted := append([]string(nil), s.Platforms...)
		sort.Strings(sorted)
		platforms = "[" + strings.Join(sorted, ",") + "]"
	}
	return fmt.Sprintf("g=%s|a=%s|p=%s|l=%s|ps=%s|v=%t",
		norm(s.Gender), norm(s.AgeGroup), norm(s.PlatformType), norm(s.AddictionLevel), platforms, s.VulnerableOnly)
}

// Matcher compiles the selection into a predicate.
func (s FilterSpec) Matcher() func(model.StudentRecord) bool {
	var preds []func(model.StudentRecord) bool
	if active(s.Gender) {
		want := strings.TrimSpace(s.Gender)
		preds = append(preds, func(r model.StudentRecord) bool { return r.Gender == want })
	}
	if active(s.AgeGroup) {
		want := strings.TrimSpace(s.AgeGroup)
		preds = append(preds, func(r model.StudentRecord) bool { return r.AgeGroup == want })
	}
	if active(s.PlatformType) {
		want := strings.TrimSpace(s.PlatformType)
		preds = append(preds, func(r model.StudentRecord) bool { return r.PlatformType == want })
	}
	if active(s.AddictionLevel) {
		want := strings.TrimSpace(s.AddictionLevel)
		preds = append(preds, func(r model.StudentRecord) bool { return r.AddictionLevel == want })
	}
	if s.Platforms != nil {
		set := make(map[string]struct{}, len(s.Platforms))
		for _, p := range s.Platforms {
			set[strings.TrimSpace(p)] = struct{}{}
		}
		preds = append(preds, func(r model.StudentRecord) bool {
			_, ok := set[r.PlatformType]
			return ok
		})
	}
	if s.VulnerableOnly {
		preds = append(preds, func(r model.StudentRecord) bool { return r.Vulnerable.Any() })
	}
	return func(r model.StudentRecord) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records matching every active constraint, in input order.
func Filter(records []model.StudentRecord, spec FilterSpec) []model.StudentRecord {
	return Where(records, spec.Matcher())
}

// Where returns the records satisfying pred, in input order.
func Where(records []model.StudentRecord, pred func(model.StudentRecord) bool) []model.StudentRecord {
	out := make([]model.StudentRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Options lists the selectable values for each filter control, each headed
// by the "Semua" sentinel. Genders and addiction levels keep first-seen order,
// age groups follow the band order with other labels sorted after it, and
// platforms are sorted.
func Options(records []model.StudentRecord) model.FilterOptions {
	withAll := func(values []string) []string {
		return append([]string{model.AllSentinel}, values...)
	}
	ages := orderLabels(Distinct(records, AgeGroup), AgeGroup.Order)
	platforms := Distinct(records, PlatformType)
	sort.Strings(platforms)
	return model.FilterOptions{
		Genders:         withAll(Distinct(records, Gender)),
		AgeGroups:       withAll(ages),
		Platforms:       withAll(platforms),
		AddictionLevels: withAll(Distinct(records, AddictionLevel)),
	}
}

// Distinct returns the values of f in first-seen order.
func Distinct(records []model.StudentRecord, f CategoryField) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		v := f.Get(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
