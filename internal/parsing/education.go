package parsing

import (
	"regexp"
	"strings"
)

// Education levels, higher is more advanced. LevelUnknown means no recognizable degree.
const (
	LevelUnknown     = 0
	LevelCertificate = 1
	LevelDiploma     = 2
	LevelAssociate   = 3
	LevelBachelor    = 4
	LevelMaster      = 5
	LevelDoctorate   = 6
)

// degreeLevels maps degree words and abbreviations to their level
var degreeLevels = map[string]int{
	"phd":         LevelDoctorate,
	"doctorate":   LevelDoctorate,
	"master":      LevelMaster,
	"masters":     LevelMaster,
	"msc":         LevelMaster,
	"ma":          LevelMaster,
	"mba":         LevelMaster,
	"mtech":       LevelMaster,
	"me":          LevelMaster,
	"bachelor":    LevelBachelor,
	"bachelors":   LevelBachelor,
	"bsc":         LevelBachelor,
	"ba":          LevelBachelor,
	"btech":       LevelBachelor,
	"be":          LevelBachelor,
	"associate":   LevelAssociate,
	"diploma":     LevelDiploma,
	"certificate": LevelCertificate,
}

var wordPattern = regexp.MustCompile(`[a-z]+`)

// EducationLevel returns the highest degree level mentioned in text.
// Matching is case-insensitive on whole words after dots are removed, so "Ph.D." and
// "B.Tech" are recognized while "Diploma" does not count as "ma".
func EducationLevel(text string) int {
	cleaned := strings.ReplaceAll(strings.ToLower(text), ".", "")
	level := LevelUnknown
	for _, word := range wordPattern.FindAllString(cleaned, -1) {
		if l, ok := degreeLevels[word]; ok && l > level {
			level = l
		}
	}
	return level
}

// IsUnspecified reports whether an extracted field is empty or a "Not specified" sentinel
func IsUnspecified(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || strings.EqualFold(t, "not specified")
}
