package textanalysis

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// CalculateTextSimilarity returns the similarity of two texts in [0,1].
// Failures yield 0.
func (h *Heuristic) CalculateTextSimilarity(a, b string) float64 {
	return h.Similarity(a, b).Score
}

// Similarity compares two texts. With an Embedder configured it uses cosine similarity of the
// embeddings and falls back to Jaccard over lemma sets when embedding fails.
func (h *Heuristic) Similarity(a, b string) (result types.SimilarityResult) {
	defer func() {
		if r := recover(); r != nil {
			result = types.SimilarityResult{
				Score:   0,
				Method:  types.SimilarityMethodNone,
				Failure: fmt.Sprintf("similarity panicked: %v", r),
			}
		}
	}()

	var failure string
	if h.embedder != nil {
		score, err := h.embeddingSimilarity(a, b)
		if err == nil {
			return types.SimilarityResult{Score: score, Method: types.SimilarityMethodEmbedding}
		}
		failure = err.Error()
	}

	return types.SimilarityResult{
		Score:   JaccardSimilarity(a, b),
		Method:  types.SimilarityMethodJaccard,
		Failure: failure,
	}
}

func (h *Heuristic) embeddingSimilarity(a, b string) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.embedTimeout)
	defer cancel()

	va, err := h.embedder.Embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("failed to embed first text: %w", err)
	}
	vb, err := h.embedder.Embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("failed to embed second text: %w", err)
	}
	return Cosine(va, vb)
}

// Cosine returns the cosine similarity of two vectors clamped to [0,1]
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("vector dimensions do not match: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-length vector")
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim)), nil
}

// JaccardSimilarity is the overlap of the lemma sets of two texts, 0 when either set is empty
func JaccardSimilarity(a, b string) float64 {
	v := backend()
	setA, setB := v.lemmaSet(a), v.lemmaSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for lemma := range setA {
		if _, ok := setB[lemma]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
