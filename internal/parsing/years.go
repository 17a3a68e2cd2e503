package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds for a plausible years-of-experience value (exclusive)
const (
	minYears = 0
	maxYears = 50
)

// yearPatterns are tried in order; the first pattern that matches decides the result
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:\+)?\s*years?`),
	regexp.MustCompile(`(\d+)\s*(?:\+)?\s*yrs?`),
	regexp.MustCompile(`^(\d+)$`),
	regexp.MustCompile(`~(\d+)`),
}

// ExtractYears parses a years-of-experience value such as "5 years", "3+ yrs", "7" or "~4".
// Sentinels, unparseable text and values outside (0, 50) yield 0.
func ExtractYears(text string) int {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || text == "not specified" || text == "unknown" {
		return 0
	}

	for _, pattern := range yearPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if years > minYears && years < maxYears {
			return years
		}
	}
	return 0
}
