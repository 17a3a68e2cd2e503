package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(&types.JobAnalysis{
		RequiredSkills:         []string{"python", "aws", "docker", "kubernetes", "terraform", "go"},
		ExperienceRequirements: "3 years",
		EducationRequirements:  "bachelor | degree",
		ImportantKeywords:      []string{"python", "services"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "3 years")
	assert.Contains(t, output, "bachelor | degree")
	assert.Contains(t, output, "• python")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Keywords: python, services")
}

func TestPrintJobAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scored := make([]types.ScoredCandidate, 7)
	for i := range scored {
		scored[i].Position = i
		scored[i].OverallScore = float64(90 - i)
	}
	scored[0].Name = "Ada Lovelace"
	scored[1].Filename = "grace.pdf"

	p.PrintRankedCandidates(scored)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED CANDIDATES")
	assert.Contains(t, output, "Total candidates ranked: 7")
	assert.Contains(t, output, "#1  Ada Lovelace")
	assert.Contains(t, output, "#2  grace.pdf")
	assert.Contains(t, output, "#3  candidate 3")
	assert.Contains(t, output, "Overall: 90.0")
	assert.Contains(t, output, "... and 2 more candidates")
}

func TestPrintRankedCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRankedCandidates(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	c := types.ScoredCandidate{ScoreResult: types.ScoreResult{SkillsScore: 90, KeywordScore: 20, OverallScore: 55}}
	b := ranking.GetScoringBreakdown(c, types.DefaultWeights())
	p.PrintBreakdown("Ada", &b)
	output := buf.String()

	assert.Contains(t, output, "BREAKDOWN: Ada")
	assert.Contains(t, output, "Skills Match")
	assert.Contains(t, output, "Strengths:")
	assert.Contains(t, output, "Strong skill match")
	assert.Contains(t, output, "Areas for improvement:")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(types.ScreeningSummary{Total: 4, AverageScore: 61.25, TopScore: 88, Qualified: 2})
	output := buf.String()

	assert.Contains(t, output, "SCREENING SUMMARY")
	assert.Contains(t, output, "Candidates:    4")
	assert.Contains(t, output, "Qualified:     2")
}

func TestPrintSkillCategories(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillCategories(map[string][]string{
		"web":         {"React"},
		"programming": {"Python", "Go"},
	})
	output := buf.String()

	assert.Contains(t, output, "programming: Python, Go")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("programming")), bytes.Index(buf.Bytes(), []byte("web:")))
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	a := types.ScoredCandidate{ScoreResult: types.ScoreResult{OverallScore: 80}}
	b := types.ScoredCandidate{ScoreResult: types.ScoreResult{OverallScore: 60}}

	NewPrinter(&buf).PrintComparison([]string{"Ada", "Grace"}, ranking.Compare(a, b))
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE COMPARISON")
	assert.Contains(t, output, "Overall Score")
	assert.Contains(t, output, "80.0")
	assert.Contains(t, output, "60.0")
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc ", 5))
	assert.Equal(t, "ab...", TruncateForLog("abcdef", 2))
	assert.Equal(t, "", TruncateForLog("abc", 0))
}
