// Package parsing provides the small text parsers shared by the analyzer and the scoring engine:
// skill name normalization and variants, year counts and education levels.
package parsing

import (
	"strings"
)

// skillVariants maps a main skill form to its common abbreviations and alternate spellings
var skillVariants = map[string][]string{
	"javascript":                {"js", "ecmascript"},
	"typescript":                {"ts"},
	"python":                    {"py"},
	"machine learning":          {"ml", "ai", "artificial intelligence"},
	"database":                  {"db", "sql"},
	"user interface":            {"ui"},
	"user experience":           {"ux"},
	"cascading style sheets":    {"css"},
	"hypertext markup language": {"html"},
	"node.js":                   {"nodejs", "node"},
	"react.js":                  {"react", "reactjs"},
	"angular.js":                {"angular", "angularjs"},
	"vue.js":                    {"vue", "vuejs"},
}

// SkillKey returns the comparison key for a skill name (trimmed, lower-cased)
func SkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// IsSkillVariant reports whether two skill names are known variants of each other.
// Either one is the main form and the other is listed under it, or both are listed
// under the same main form.
func IsSkillVariant(a, b string) bool {
	a, b = SkillKey(a), SkillKey(b)
	if a == "" || b == "" {
		return false
	}

	for main, variants := range skillVariants {
		aIn := contains(variants, a)
		bIn := contains(variants, b)
		if (a == main && bIn) || (b == main && aIn) || (aIn && bIn) {
			return true
		}
	}
	return false
}

// IsPartialSkillMatch reports whether a candidate skill partially satisfies a required skill:
// one contains the other, or they are variants.
func IsPartialSkillMatch(required, candidate string) bool {
	r, c := SkillKey(required), SkillKey(candidate)
	if r == "" || c == "" {
		return false
	}
	return strings.Contains(r, c) || strings.Contains(c, r) || IsSkillVariant(r, c)
}

// DedupeSkills trims skill names and removes case-insensitive duplicates,
// keeping the first spelling seen. Empty names are dropped.
func DedupeSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		trimmed := strings.TrimSpace(s)
		key := strings.ToLower(trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
