package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/textanalysis"
	"github.com/jonathan/resume-screener/internal/types"
	"golang.org/x/sync/errgroup"
)

// Engine scores candidate records against job descriptions.
// It holds no per-pass state and is safe for concurrent use.
type Engine struct {
	strategy    textanalysis.Strategy
	parallelism int
}

// Option configures an Engine
type Option func(*Engine)

// WithParallelism scores up to n candidates concurrently. n <= 1 scores sequentially.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// NewEngine creates an Engine backed by the given text-analysis strategy
func NewEngine(strategy textanalysis.Strategy, opts ...Option) *Engine {
	e := &Engine{strategy: strategy, parallelism: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeJob derives the requirements of a job description
func (e *Engine) AnalyzeJob(jobDescription string) types.JobAnalysis {
	return textanalysis.AnalyzeJobRequirements(e.strategy, jobDescription)
}

// Similarity compares two texts with the engine's strategy
func (e *Engine) Similarity(a, b string) types.SimilarityResult {
	return e.strategy.Similarity(a, b)
}

// ScoreCandidates scores every candidate against the job description and returns them sorted
// by overall score, highest first. Equal scores keep input order. Weights are used as given;
// the caller is responsible for them summing to 1.
func (e *Engine) ScoreCandidates(candidates []types.CandidateRecord, jobDescription string, weights types.Weights) []types.ScoredCandidate {
	scored, _ := e.ScoreWithAnalysis(candidates, jobDescription, weights)
	return scored
}

// ScoreWithAnalysis is ScoreCandidates that also returns the job analysis the pass scored against
func (e *Engine) ScoreWithAnalysis(candidates []types.CandidateRecord, jobDescription string, weights types.Weights) ([]types.ScoredCandidate, types.JobAnalysis) {
	analysis := e.AnalyzeJob(jobDescription)

	scored := make([]types.ScoredCandidate, len(candidates))
	score := func(i int) {
		scored[i] = types.ScoredCandidate{
			CandidateRecord: candidates[i],
			ScoreResult:     e.ScoreCandidate(candidates[i], jobDescription, analysis, weights),
			Position:        i,
		}
	}

	if e.parallelism > 1 && len(candidates) > 1 {
		var g errgroup.Group
		g.SetLimit(e.parallelism)
		for i := range candidates {
			g.Go(func() error {
				score(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range candidates {
			score(i)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})
	return scored, analysis
}

// ScoreCandidate computes the component and overall scores of one candidate
func (e *Engine) ScoreCandidate(c types.CandidateRecord, jobDescription string, analysis types.JobAnalysis, weights types.Weights) types.ScoreResult {
	skills := computeSkillsScore(c.Skills, analysis.RequiredSkills)
	experience := computeExperienceScore(c.ExperienceYears, analysis.ExperienceRequirements)
	education := computeEducationScore(c.Education, analysis.EducationRequirements)
	keyword := computeKeywordScore(c.RawText, analysis.ImportantKeywords)
	similarity := e.computeSimilarityScore(c.RawText, jobDescription)

	return types.ScoreResult{
		SkillsScore:     round1(skills),
		ExperienceScore: round1(experience),
		EducationScore:  round1(education),
		KeywordScore:    round1(keyword),
		SimilarityScore: round1(similarity),
		OverallScore:    round1(overallScore(skills, experience, education, keyword, similarity, weights)),
	}
}

// computeSimilarityScore scales text similarity to 0-100; empty text scores 0
func (e *Engine) computeSimilarityScore(candidateText, jobDescription string) float64 {
	if candidateText == "" || jobDescription == "" {
		return 0.0
	}
	return e.strategy.Similarity(candidateText, jobDescription).Score * 100
}
