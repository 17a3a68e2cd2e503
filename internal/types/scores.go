//nolint:revive // types is a standard Go package name pattern
package types

// ScoreResult holds the component and overall scores for one candidate.
// All scores are on a 0-100 scale rounded to one decimal.
type ScoreResult struct {
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	KeywordScore    float64 `json:"keyword_score"`
	SimilarityScore float64 `json:"similarity_score"`
	OverallScore    float64 `json:"overall_score"`
}

// ScoredCandidate is a candidate record annotated with its scores.
// Position is the candidate's index in the input slice.
type ScoredCandidate struct {
	CandidateRecord
	ScoreResult
	Position int `json:"position"`
}

// Similarity methods reported in SimilarityResult.Method
const (
	SimilarityMethodEmbedding = "embedding"
	SimilarityMethodJaccard   = "jaccard"
	SimilarityMethodNone      = "none"
)

// SimilarityResult is the outcome of a text similarity computation
type SimilarityResult struct {
	Score   float64 `json:"score"`             // 0.0-1.0
	Method  string  `json:"method"`            // embedding, jaccard or none
	Failure string  `json:"failure,omitempty"` // set when a backend failed and a fallback or zero was used
}

// ComponentBreakdown describes one component's part in the overall score
type ComponentBreakdown struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// ScoringBreakdown explains an overall score for a single candidate
type ScoringBreakdown struct {
	Components          []ComponentBreakdown `json:"components"`
	OverallScore        float64              `json:"overall_score"`
	Strengths           []string             `json:"strengths"`
	AreasForImprovement []string             `json:"areas_for_improvement"`
}

// ScreeningSummary aggregates a scored candidate list
type ScreeningSummary struct {
	Total        int     `json:"total"`
	AverageScore float64 `json:"average_score"`
	TopScore     float64 `json:"top_score"`
	Qualified    int     `json:"qualified"`
}
