// Package ranking scores candidates against a job description and ranks them.
package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Skill match credit
const (
	exactMatchWeight   = 1.0
	partialMatchWeight = 0.7
)

// Neutral and fallback component scores
const (
	noExperienceRequirementScore = 75.0
	noCandidateExperienceScore   = 30.0
	noEducationRequirementScore  = 75.0
	noCandidateEducationScore    = 40.0
	unknownRequiredLevelScore    = 70.0
	unknownCandidateLevelScore   = 50.0
	neutralKeywordScore          = 50.0
)

// computeSkillsScore credits each required skill once: 1.0 for an exact (case-insensitive)
// candidate skill, otherwise 0.7 for the first partial or variant match. Returns 0-100.
func computeSkillsScore(candidateSkills, requiredSkills []string) float64 {
	candidate := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		if key := parsing.SkillKey(s); key != "" {
			candidate = append(candidate, key)
		}
	}
	if len(requiredSkills) == 0 || len(candidate) == 0 {
		return 0.0
	}

	candidateSet := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		candidateSet[s] = true
	}

	credit := 0.0
	for _, req := range requiredSkills {
		required := parsing.SkillKey(req)
		if candidateSet[required] {
			credit += exactMatchWeight
			continue
		}
		for _, c := range candidate {
			if parsing.IsPartialSkillMatch(required, c) {
				credit += partialMatchWeight
				break
			}
		}
	}

	return math.Min(credit/float64(len(requiredSkills))*100, 100)
}

// computeExperienceScore compares candidate years against the required years. Returns 0-100.
func computeExperienceScore(candidateExperience, requiredExperience string) float64 {
	candidateYears := float64(parsing.ExtractYears(candidateExperience))
	requiredYears := float64(parsing.ExtractYears(requiredExperience))

	if requiredYears == 0 {
		return noExperienceRequirementScore
	}
	if candidateYears == 0 {
		return noCandidateExperienceScore
	}

	ratio := candidateYears / requiredYears
	if candidateYears >= requiredYears {
		if ratio <= 1.5 {
			return 100.0
		}
		// Slight penalty for heavy overqualification, floored at 85
		return math.Max(85.0, 100.0-(ratio-1.5)*10)
	}
	return ratio * 80
}

// computeKeywordScore is the percentage of important keywords found in the candidate text
func computeKeywordScore(candidateText string, keywords []string) float64 {
	if len(keywords) == 0 || candidateText == "" {
		return neutralKeywordScore
	}

	lower := strings.ToLower(candidateText)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords)) * 100
}

// overallScore combines component scores with weights. Weights are applied as given.
func overallScore(skills, experience, education, keyword, similarity float64, w types.Weights) float64 {
	return skills*w.SkillsMatch +
		experience*w.ExperienceMatch +
		education*w.EducationMatch +
		keyword*w.KeywordRelevance +
		similarity*w.TextSimilarity
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
