package util

import (
	"regexp"
	"strings"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

var (
	// multiSpacePattern matches runs of whitespace, including non-breaking spaces.
	multiSpacePattern = regexp.MustCompile(`[\s\x{00A0}]+`)

	genderAliases = map[string]string{
		"female":    model.GenderFemale,
		"f":         model.GenderFemale,
		"perempuan": model.GenderFemale,
		"wanita":    model.GenderFemale,
		"male":      model.GenderMale,
		"m":         model.GenderMale,
		"laki-laki": model.GenderMale,
		"laki laki": model.GenderMale,
		"pria":      model.GenderMale,
	}
)

// CleanLabel strips a byte-order mark and surrounding quotes, then collapses
// internal whitespace. Spreadsheet exports routinely carry all three.
func CleanLabel(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = multiSpacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CanonicalGender maps English and Indonesian spellings onto the dataset's
// two gender labels. Unknown values are returned cleaned but otherwise as is.
func CanonicalGender(s string) string {
	s = CleanLabel(s)
	if g, ok := genderAliases[strings.ToLower(s)]; ok {
		return g
	}
	return s
}

// NeedsCleanup reports whether CleanLabel would change s.
func NeedsCleanup(s string) bool {
	return CleanLabel(s) != s
}
