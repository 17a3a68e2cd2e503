package ranking

import (
	"github.com/jonathan/resume-screener/internal/types"
)

// Thresholds for strengths and areas for improvement
const (
	strengthThreshold        = 80.0
	keywordStrengthThreshold = 70.0
	weaknessThreshold        = 50.0
	keywordWeaknessThreshold = 40.0
)

// Component keys used in breakdowns and sort options
const (
	ComponentSkills     = "skills_match"
	ComponentExperience = "experience_match"
	ComponentEducation  = "education_match"
	ComponentKeyword    = "keyword_relevance"
	ComponentSimilarity = "text_similarity"
)

// GetScoringBreakdown explains a scored candidate's overall score component by component
// using the weights the candidate was scored with.
func GetScoringBreakdown(c types.ScoredCandidate, weights types.Weights) types.ScoringBreakdown {
	components := []types.ComponentBreakdown{
		component(ComponentSkills, "Skills Match", c.SkillsScore, weights.SkillsMatch),
		component(ComponentExperience, "Experience Match", c.ExperienceScore, weights.ExperienceMatch),
		component(ComponentEducation, "Education Match", c.EducationScore, weights.EducationMatch),
		component(ComponentKeyword, "Keyword Relevance", c.KeywordScore, weights.KeywordRelevance),
		component(ComponentSimilarity, "Text Similarity", c.SimilarityScore, weights.TextSimilarity),
	}

	return types.ScoringBreakdown{
		Components:          components,
		OverallScore:        c.OverallScore,
		Strengths:           identifyStrengths(c.ScoreResult),
		AreasForImprovement: identifyWeaknesses(c.ScoreResult),
	}
}

func component(key, label string, score, weight float64) types.ComponentBreakdown {
	return types.ComponentBreakdown{
		Key:          key,
		Label:        label,
		Score:        score,
		Weight:       weight,
		Contribution: score * weight,
	}
}

func identifyStrengths(s types.ScoreResult) []string {
	strengths := make([]string, 0)
	if s.SkillsScore >= strengthThreshold {
		strengths = append(strengths, "Strong skill match with job requirements")
	}
	if s.ExperienceScore >= strengthThreshold {
		strengths = append(strengths, "Excellent experience level for the role")
	}
	if s.EducationScore >= strengthThreshold {
		strengths = append(strengths, "Educational background aligns well with requirements")
	}
	if s.KeywordScore >= keywordStrengthThreshold {
		strengths = append(strengths, "Resume contains relevant industry keywords")
	}
	return strengths
}

func identifyWeaknesses(s types.ScoreResult) []string {
	weaknesses := make([]string, 0)
	if s.SkillsScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Limited skill overlap with job requirements")
	}
	if s.ExperienceScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Experience level may not meet job requirements")
	}
	if s.EducationScore < weaknessThreshold {
		weaknesses = append(weaknesses, "Educational background differs from typical requirements")
	}
	if s.KeywordScore < keywordWeaknessThreshold {
		weaknesses = append(weaknesses, "Resume could benefit from more relevant industry keywords")
	}
	return weaknesses
}
