package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJob = `Senior Data Engineer

Requirements:
- Python and SQL
- Machine learning experience
- 3+ years of experience with Python
- Bachelor's degree in Computer Science`

const testCandidates = `[
  {
    "name": "Strong Match",
    "skills": ["Python", "SQL", "Machine Learning"],
    "experience_years": "6",
    "education": "Master | Bachelor",
    "raw_text": "Data engineer with 6 years of Python, SQL and machine learning experience."
  },
  {
    "name": "Weak Match",
    "skills": ["Photoshop"],
    "experience_years": "1",
    "education": "High School",
    "raw_text": "Graphic designer."
  },
  {
    "name": "Unknown",
    "skills": [],
    "experience_years": "Not Specified",
    "education": "Not Specified",
    "raw_text": ""
  }
]`

func writeInputs(t *testing.T) (dir, jobPath, candidatesPath string) {
	t.Helper()
	dir = t.TempDir()
	jobPath = writeFile(t, dir, "job.txt", testJob)
	candidatesPath = writeFile(t, dir, "candidates.json", testCandidates)
	return dir, jobPath, candidatesPath
}

func readScoreOutput(t *testing.T, path string) ScoreOutput {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var output ScoreOutput
	require.NoError(t, json.Unmarshal(data, &output))
	return output
}

func TestAnalyzeJobCommand(t *testing.T) {
	dir, jobPath, _ := writeInputs(t)
	outPath := filepath.Join(dir, "analysis.json")

	out, err := executeCommand(t, "analyze-job", "--job", jobPath, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "JOB ANALYSIS")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var analysis AnalyzeOutput
	require.NoError(t, json.Unmarshal(data, &analysis))
	assert.Contains(t, strings.ToLower(strings.Join(analysis.RequiredSkills, ",")), "python")
	assert.Equal(t, "3 years", analysis.ExperienceRequirements)
	require.NotNil(t, analysis.Source)
	assert.NotEmpty(t, analysis.Source.Hash)
}

func TestAnalyzeJobCommand_MissingInput(t *testing.T) {
	_, err := executeCommand(t, "analyze-job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --job or --job-url must be provided")
}

func TestAnalyzeJobCommand_MutuallyExclusive(t *testing.T) {
	_, jobPath, _ := writeInputs(t)

	_, err := executeCommand(t, "analyze-job", "--job", jobPath, "--job-url", "https://example.com/job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestScoreCommand(t *testing.T) {
	dir, jobPath, candidatesPath := writeInputs(t)
	outPath := filepath.Join(dir, "scored.json")

	out, err := executeCommand(t, "score", "--job", jobPath, "--candidates", candidatesPath, "--out", outPath, "--shortlist")
	require.NoError(t, err)
	assert.Contains(t, out, "TOP RANKED CANDIDATES")
	assert.Contains(t, out, "SCREENING SUMMARY")

	output := readScoreOutput(t, outPath)
	require.Len(t, output.Candidates, 3)
	assert.Equal(t, "Strong Match", output.Candidates[0].Name)
	for i := 1; i < len(output.Candidates); i++ {
		assert.GreaterOrEqual(t, output.Candidates[i-1].OverallScore, output.Candidates[i].OverallScore)
	}
	assert.Equal(t, 3, output.Summary.Total)
	assert.InDelta(t, 1.0, output.Weights.Sum(), 1e-9)
	assert.Nil(t, output.RunID)
}

func TestScoreCommand_ConfigWeightsAndFlagsOverride(t *testing.T) {
	dir, jobPath, candidatesPath := writeInputs(t)
	outPath := filepath.Join(dir, "scored.json")
	configPath := writeFile(t, dir, "config.json", `{
  "candidates": "`+candidatesPath+`",
  "weights": {"skills_match": 50, "experience_match": 20, "education_match": 10, "keyword_relevance": 10, "text_similarity": 10},
  "top_n": 1
}`)

	_, err := executeCommand(t, "score", "--config", configPath, "--job", jobPath, "--top", "2", "--out", outPath)
	require.NoError(t, err)

	output := readScoreOutput(t, outPath)
	assert.Len(t, output.Candidates, 2)
	assert.InDelta(t, 0.5, output.Weights.SkillsMatch, 1e-9)
	assert.InDelta(t, 0.1, output.Weights.TextSimilarity, 1e-9)
	// summary covers every candidate, not just the kept ones
	assert.Equal(t, 3, output.Summary.Total)
}

func TestScoreCommand_MinScoreFilters(t *testing.T) {
	dir, jobPath, candidatesPath := writeInputs(t)
	outPath := filepath.Join(dir, "scored.json")

	_, err := executeCommand(t, "score", "--job", jobPath, "--candidates", candidatesPath, "--min-score", "100", "--out", outPath)
	require.NoError(t, err)

	output := readScoreOutput(t, outPath)
	assert.Empty(t, output.Candidates)
	assert.Equal(t, 3, output.Summary.Total)
}

func TestScoreCommand_Errors(t *testing.T) {
	_, jobPath, candidatesPath := writeInputs(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "missing candidates",
			args:        []string{"score", "--job", jobPath},
			errorString: "--candidates is required",
		},
		{
			name:        "missing job",
			args:        []string{"score", "--candidates", candidatesPath},
			errorString: "either --job or --job-url must be provided",
		},
		{
			name:        "invalid sort key",
			args:        []string{"score", "--job", jobPath, "--candidates", candidatesPath, "--sort-by", "name"},
			errorString: "sort_by",
		},
		{
			name:        "save without database",
			args:        []string{"score", "--job", jobPath, "--candidates", candidatesPath, "--save"},
			errorString: "--save requires",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")

			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestBreakdownCommand(t *testing.T) {
	dir, jobPath, candidatesPath := writeInputs(t)
	scoredPath := filepath.Join(dir, "scored.json")
	_, err := executeCommand(t, "score", "--job", jobPath, "--candidates", candidatesPath, "--out", scoredPath)
	require.NoError(t, err)

	t.Run("single candidate", func(t *testing.T) {
		out, err := executeCommand(t, "breakdown", "--scored", scoredPath, "--index", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "BREAKDOWN: Strong Match")
		assert.NotContains(t, out, "CANDIDATE COMPARISON")
	})

	t.Run("comparison", func(t *testing.T) {
		outPath := filepath.Join(dir, "breakdown.json")
		out, err := executeCommand(t, "breakdown", "--scored", scoredPath, "--index", "1", "--index", "2", "--out", outPath)
		require.NoError(t, err)
		assert.Contains(t, out, "CANDIDATE COMPARISON")

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		var results []BreakdownOutput
		require.NoError(t, json.Unmarshal(data, &results))
		require.Len(t, results, 2)
		assert.Equal(t, 1, results[0].Rank)
		assert.Len(t, results[0].Breakdown.Components, 5)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := executeCommand(t, "breakdown", "--scored", scoredPath, "--index", "9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestLoadScored_AcceptsBareArray(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.json", `[{"name": "Solo", "skills": [], "experience_years": "2", "education": "", "raw_text": "", "overall_score": 42.5, "position": 0}]`)

	output, err := loadScored(path)
	require.NoError(t, err)
	require.Len(t, output.Candidates, 1)
	assert.Equal(t, "Solo", output.Candidates[0].Name)
	assert.InDelta(t, 42.5, output.Candidates[0].OverallScore, 1e-9)
}

func TestSimilarityCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "python engineer building data pipelines")
	b := writeFile(t, dir, "b.txt", "python engineer building data pipelines")

	out, err := executeCommand(t, "similarity", "--a", a, "--b", b)
	require.NoError(t, err)
	assert.Contains(t, out, "Similarity: 1.0000 (jaccard)")
}

func TestSimilarityCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "text")

	_, err := executeCommand(t, "similarity", "--a", a, "--b", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestHashSecretCommand(t *testing.T) {
	secret := "a-long-client-secret-value"
	clientID := "0b9f4c3e-8a27-4f43-9d2b-6f1c2a7e5d10"

	out, err := executeCommand(t, "hash-secret", "--secret", secret, "--cost", "4", "--client-id", clientID)
	require.NoError(t, err)
	assert.Contains(t, out, "client_id:   "+clientID)

	var hash string
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, "secret_hash: "); ok {
			hash = v
		}
	}
	require.NotEmpty(t, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)))
}

func TestHashSecretCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, "hash-secret", "--secret", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 16 characters")

	_, err = executeCommand(t, "hash-secret", "--secret", "a-long-client-secret-value", "--cost", "4", "--client-id", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --client-id")
}
