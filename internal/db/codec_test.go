package db

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateCodec(t *testing.T) {
	in := types.ScoredCandidate{
		CandidateRecord: types.CandidateRecord{Name: "Ada", Skills: []string{"Python"}, ExperienceYears: "5", Education: "BS"},
		ScoreResult:     types.ScoreResult{SkillsScore: 80, OverallScore: 71.5},
		Position:        3,
	}

	record, scores, err := marshalCandidate(in)
	require.NoError(t, err)
	assert.NotContains(t, string(record), "overall_score")
	assert.NotContains(t, string(scores), "Ada")

	out, err := unmarshalCandidate(3, record, scores)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUnmarshalCandidate_Invalid(t *testing.T) {
	_, err := unmarshalCandidate(0, []byte("{"), []byte("{}"))
	assert.Error(t, err)
}

func TestRunFieldsCodec(t *testing.T) {
	in := &RunInput{
		Analysis: types.JobAnalysis{RequiredSkills: []string{"go"}, ExperienceRequirements: "3 years"},
		Weights:  types.DefaultWeights(),
		Summary:  types.ScreeningSummary{Total: 2, TopScore: 90},
	}

	analysis, weights, summary, err := marshalRunFields(in)
	require.NoError(t, err)

	var run Run
	require.NoError(t, unmarshalRunFields(&run, analysis, weights, summary))
	assert.Equal(t, in.Analysis, run.Analysis)
	assert.Equal(t, in.Weights, run.Weights)
	assert.Equal(t, in.Summary, run.Summary)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, clampLimit(0))
	assert.Equal(t, DefaultListLimit, clampLimit(-3))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, MaxListLimit, clampLimit(10_000))
}
