//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"
)

// weightSumTolerance is how far the weight sum may drift from 1.0
const weightSumTolerance = 0.01

// Weights are the per-component fractions combined into the overall score
type Weights struct {
	SkillsMatch      float64 `json:"skills_match"`
	ExperienceMatch  float64 `json:"experience_match"`
	EducationMatch   float64 `json:"education_match"`
	KeywordRelevance float64 `json:"keyword_relevance"`
	TextSimilarity   float64 `json:"text_similarity"`
}

// DefaultWeights returns the default scoring weights
func DefaultWeights() Weights {
	return Weights{
		SkillsMatch:      0.40,
		ExperienceMatch:  0.25,
		EducationMatch:   0.15,
		KeywordRelevance: 0.15,
		TextSimilarity:   0.05,
	}
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.SkillsMatch + w.ExperienceMatch + w.EducationMatch + w.KeywordRelevance + w.TextSimilarity
}

// Validate checks that every weight is within [0,1] and that they sum to 1.
func (w Weights) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"skills_match", w.SkillsMatch},
		{"experience_match", w.ExperienceMatch},
		{"education_match", w.EducationMatch},
		{"keyword_relevance", w.KeywordRelevance},
		{"text_similarity", w.TextSimilarity},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || n.value < 0 || n.value > 1 {
			return fmt.Errorf("weight %s must be between 0 and 1, got %v", n.name, n.value)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Normalize scales the weights so they sum to 1. A zero sum yields DefaultWeights.
func (w Weights) Normalize() Weights {
	sum := w.Sum()
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		SkillsMatch:      w.SkillsMatch / sum,
		ExperienceMatch:  w.ExperienceMatch / sum,
		EducationMatch:   w.EducationMatch / sum,
		KeywordRelevance: w.KeywordRelevance / sum,
		TextSimilarity:   w.TextSimilarity / sum,
	}
}

// WeightPercentages is the integer-percentage form of Weights used by config files and forms
type WeightPercentages struct {
	SkillsMatch      int `json:"skills_match"`
	ExperienceMatch  int `json:"experience_match"`
	EducationMatch   int `json:"education_match"`
	KeywordRelevance int `json:"keyword_relevance"`
	TextSimilarity   int `json:"text_similarity"`
}

// Weights converts percentages to fractions
func (p WeightPercentages) Weights() Weights {
	return Weights{
		SkillsMatch:      float64(p.SkillsMatch) / 100,
		ExperienceMatch:  float64(p.ExperienceMatch) / 100,
		EducationMatch:   float64(p.EducationMatch) / 100,
		KeywordRelevance: float64(p.KeywordRelevance) / 100,
		TextSimilarity:   float64(p.TextSimilarity) / 100,
	}
}

// IsZero reports whether no percentage was set
func (p WeightPercentages) IsZero() bool {
	return p == WeightPercentages{}
}
