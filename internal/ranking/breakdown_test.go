package ranking

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScoringBreakdown(t *testing.T) {
	c := types.ScoredCandidate{ScoreResult: types.ScoreResult{
		SkillsScore:     85,
		ExperienceScore: 100,
		EducationScore:  40,
		KeywordScore:    30,
		SimilarityScore: 20,
		OverallScore:    68.5,
	}}

	b := GetScoringBreakdown(c, types.DefaultWeights())

	require.Len(t, b.Components, 5)
	assert.Equal(t, ComponentSkills, b.Components[0].Key)
	assert.Equal(t, "Skills Match", b.Components[0].Label)
	assert.InDelta(t, 0.4, b.Components[0].Weight, 0.0001)
	assert.InDelta(t, 34.0, b.Components[0].Contribution, 0.0001)
	assert.InDelta(t, 1.0, b.Components[4].Contribution, 0.0001)
	assert.Equal(t, 68.5, b.OverallScore)

	assert.Equal(t, []string{
		"Strong skill match with job requirements",
		"Excellent experience level for the role",
	}, b.Strengths)
	assert.Equal(t, []string{
		"Educational background differs from typical requirements",
		"Resume could benefit from more relevant industry keywords",
	}, b.AreasForImprovement)
}

func TestGetScoringBreakdown_Thresholds(t *testing.T) {
	tests := []struct {
		name           string
		scores         types.ScoreResult
		wantStrengths  int
		wantWeaknesses int
	}{
		{"all at strength boundary", types.ScoreResult{SkillsScore: 80, ExperienceScore: 80, EducationScore: 80, KeywordScore: 70}, 4, 0},
		{"just under strength", types.ScoreResult{SkillsScore: 79.9, ExperienceScore: 79.9, EducationScore: 79.9, KeywordScore: 69.9}, 0, 0},
		{"at weakness boundary", types.ScoreResult{SkillsScore: 50, ExperienceScore: 50, EducationScore: 50, KeywordScore: 40}, 0, 0},
		{"all weak", types.ScoreResult{SkillsScore: 49.9, ExperienceScore: 0, EducationScore: 25, KeywordScore: 39.9}, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := GetScoringBreakdown(types.ScoredCandidate{ScoreResult: tt.scores}, types.DefaultWeights())
			assert.Len(t, b.Strengths, tt.wantStrengths)
			assert.Len(t, b.AreasForImprovement, tt.wantWeaknesses)
			assert.NotNil(t, b.Strengths)
			assert.NotNil(t, b.AreasForImprovement)
		})
	}
}
