// Package textanalysis turns job descriptions and resume text into the signals the scoring
// engine consumes: required skills, experience and education requirements, ranked keywords
// and text similarity.
package textanalysis

import (
	"context"

	"github.com/jonathan/resume-screener/internal/types"
)

// Strategy is a pluggable text-analysis backend.
type Strategy interface {
	ExtractSkills(text string) []string
	ExtractExperience(text string) string
	ExtractEducation(text string) string
	ExtractKeywords(text string) []string
	Similarity(a, b string) types.SimilarityResult
}

// Embedder produces a distributional vector for a piece of text
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// AnalyzeJobRequirements derives the structured requirements of a job description
func AnalyzeJobRequirements(s Strategy, jobDescription string) types.JobAnalysis {
	return types.JobAnalysis{
		RequiredSkills:         s.ExtractSkills(jobDescription),
		ExperienceRequirements: s.ExtractExperience(jobDescription),
		EducationRequirements:  s.ExtractEducation(jobDescription),
		ImportantKeywords:      s.ExtractKeywords(jobDescription),
	}
}
