package textanalysis

import (
	"fmt"
	"strconv"
	"strings"
)

// Plausible range for a required number of years (exclusive)
const (
	minRequiredYears = 0
	maxRequiredYears = 20
)

// ExtractExperience returns the smallest years-of-experience requirement as "<N> years",
// or NotSpecified.
func (h *Heuristic) ExtractExperience(text string) string {
	v := backend()
	lower := strings.ToLower(text)

	best := 0
	for _, pattern := range v.experience {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(match[1])
			if err != nil || years <= minRequiredYears || years >= maxRequiredYears {
				continue
			}
			if best == 0 || years < best {
				best = years
			}
		}
	}

	if best == 0 {
		return NotSpecified
	}
	return fmt.Sprintf("%d years", best)
}

// ExtractEducation returns the distinct degree tokens in text joined by " | ", or NotSpecified
func (h *Heuristic) ExtractEducation(text string) string {
	v := backend()
	lower := strings.ToLower(text)

	var found []string
	for _, pattern := range v.educationWords {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			found = append(found, match[1])
		}
	}

	found = dedupeExact(found)
	if len(found) == 0 {
		return NotSpecified
	}
	return strings.Join(found, " | ")
}
