package candidates

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// NormalizeCandidates applies all normalization steps to each record in place
// and validates the result.
func NormalizeCandidates(records []types.CandidateRecord) error {
	for i := range records {
		NormalizeCandidate(&records[i])
		if err := records[i].Validate(); err != nil {
			return &NormalizationError{
				Index:   i,
				Message: "invalid candidate record",
				Cause:   err,
			}
		}
	}
	return nil
}

// NormalizeCandidate trims identity fields, deduplicates skills case-insensitively and
// canonicalizes missing experience and education to types.NotSpecified.
func NormalizeCandidate(c *types.CandidateRecord) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Skills = parsing.DedupeSkills(c.Skills)
	if c.Skills == nil {
		c.Skills = []string{}
	}
	c.ExperienceYears = canonicalSentinel(c.ExperienceYears)
	c.Education = canonicalSentinel(c.Education)
}

func canonicalSentinel(value string) string {
	trimmed := strings.TrimSpace(value)
	if parsing.IsUnspecified(trimmed) || strings.EqualFold(trimmed, "unknown") || strings.EqualFold(trimmed, "n/a") {
		return types.NotSpecified
	}
	return trimmed
}
