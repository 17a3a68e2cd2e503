package ranking

import (
	"github.com/jonathan/resume-screener/internal/parsing"
)

// levelGapScores maps how many levels a candidate is below the requirement to a score
var levelGapScores = map[int]float64{
	1: 75.0,
	2: 50.0,
}

const farBelowRequirementScore = 25.0

// computeEducationScore compares the highest degree level on each side. Returns 0-100.
func computeEducationScore(candidateEducation, requiredEducation string) float64 {
	if parsing.IsUnspecified(requiredEducation) {
		return noEducationRequirementScore
	}
	if parsing.IsUnspecified(candidateEducation) {
		return noCandidateEducationScore
	}

	requiredLevel := parsing.EducationLevel(requiredEducation)
	if requiredLevel == parsing.LevelUnknown {
		return unknownRequiredLevelScore
	}
	candidateLevel := parsing.EducationLevel(candidateEducation)
	if candidateLevel == parsing.LevelUnknown {
		return unknownCandidateLevelScore
	}

	if candidateLevel >= requiredLevel {
		return 100.0
	}
	if score, ok := levelGapScores[requiredLevel-candidateLevel]; ok {
		return score
	}
	return farBelowRequirementScore
}
