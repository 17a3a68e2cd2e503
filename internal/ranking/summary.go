package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultShortlistThreshold is the overall score a candidate needs to be considered qualified
const DefaultShortlistThreshold = 70.0

// Sort keys accepted by FilterOptions.SortBy
const (
	SortByOverall    = "overall"
	SortBySkills     = "skills"
	SortByExperience = "experience"
)

// FilterOptions narrows and reorders a scored candidate list
type FilterOptions struct {
	MinScore float64 `json:"min_score,omitempty"`
	SortBy   string  `json:"sort_by,omitempty"` // overall (default), skills or experience
	TopN     int     `json:"top_n,omitempty"`   // 0 keeps all
}

// Validate checks the sort key and limits
func (o FilterOptions) Validate() error {
	switch o.SortBy {
	case "", SortByOverall, SortBySkills, SortByExperience:
	default:
		return fmt.Errorf("invalid sort_by %q: must be one of overall, skills, experience", o.SortBy)
	}
	if o.MinScore < 0 || o.MinScore > 100 {
		return fmt.Errorf("min_score must be between 0 and 100, got %v", o.MinScore)
	}
	if o.TopN < 0 {
		return fmt.Errorf("top_n must not be negative, got %d", o.TopN)
	}
	return nil
}

// Filter drops candidates under MinScore, stably re-sorts by SortBy and keeps the first TopN.
// The input slice is not modified.
func Filter(scored []types.ScoredCandidate, opts FilterOptions) []types.ScoredCandidate {
	out := make([]types.ScoredCandidate, 0, len(scored))
	for _, c := range scored {
		if c.OverallScore >= opts.MinScore {
			out = append(out, c)
		}
	}

	key := sortKey(opts.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})

	if opts.TopN > 0 && len(out) > opts.TopN {
		out = out[:opts.TopN]
	}
	return out
}

func sortKey(sortBy string) func(types.ScoredCandidate) float64 {
	switch sortBy {
	case SortBySkills:
		return func(c types.ScoredCandidate) float64 { return c.SkillsScore }
	case SortByExperience:
		return func(c types.ScoredCandidate) float64 { return c.ExperienceScore }
	default:
		return func(c types.ScoredCandidate) float64 { return c.OverallScore }
	}
}

// Shortlist returns the candidates whose overall score is at least threshold, in input order
func Shortlist(scored []types.ScoredCandidate, threshold float64) []types.ScoredCandidate {
	out := make([]types.ScoredCandidate, 0)
	for _, c := range scored {
		if c.OverallScore >= threshold {
			out = append(out, c)
		}
	}
	return out
}

// Summarize computes aggregate statistics over a scored list. Qualified counts the candidates
// Shortlist would keep for the same threshold; a non-positive threshold uses DefaultShortlistThreshold.
func Summarize(scored []types.ScoredCandidate, threshold float64) types.ScreeningSummary {
	if threshold <= 0 {
		threshold = DefaultShortlistThreshold
	}
	summary := types.ScreeningSummary{Total: len(scored)}
	if len(scored) == 0 {
		return summary
	}

	total := 0.0
	for i, c := range scored {
		total += c.OverallScore
		if i == 0 || c.OverallScore > summary.TopScore {
			summary.TopScore = c.OverallScore
		}
		if c.OverallScore >= threshold {
			summary.Qualified++
		}
	}
	summary.AverageScore = round1(total / float64(len(scored)))
	return summary
}

// ComparisonRow is one metric across several candidates
type ComparisonRow struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// Compare lays out the scores of several candidates side by side
func Compare(candidates ...types.ScoredCandidate) []ComparisonRow {
	rows := []ComparisonRow{
		{Label: "Overall Score"},
		{Label: "Skills Match"},
		{Label: "Experience Match"},
		{Label: "Education Match"},
		{Label: "Keyword Relevance"},
		{Label: "Text Similarity"},
	}
	for _, c := range candidates {
		values := []float64{c.OverallScore, c.SkillsScore, c.ExperienceScore, c.EducationScore, c.KeywordScore, c.SimilarityScore}
		for i := range rows {
			rows[i].Values = append(rows[i].Values, values[i])
		}
	}
	return rows
}
