package observability

import (
	"github.com/jonathan/resume-screener/internal/textanalysis"
	"github.com/jonathan/resume-screener/internal/types"
)

// instrumentedStrategy counts similarity methods while delegating all analysis
type instrumentedStrategy struct {
	textanalysis.Strategy
	metrics *Metrics
}

// Instrument wraps s so every similarity computation is recorded in m
func (m *Metrics) Instrument(s textanalysis.Strategy) textanalysis.Strategy {
	return &instrumentedStrategy{Strategy: s, metrics: m}
}

func (s *instrumentedStrategy) Similarity(a, b string) types.SimilarityResult {
	result := s.Strategy.Similarity(a, b)
	s.metrics.ObserveSimilarity(result.Method, result.Failure != "")
	return result
}
