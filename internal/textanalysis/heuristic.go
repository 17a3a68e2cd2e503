package textanalysis

import (
	"time"
)

// NotSpecified is reported when no experience or education requirement is found
const NotSpecified = "Not specified"

// DefaultEmbedTimeout bounds a single similarity call when an Embedder is configured
const DefaultEmbedTimeout = 10 * time.Second

// Heuristic is the curated-vocabulary and regular-expression Strategy.
// It is safe for concurrent use.
type Heuristic struct {
	embedder     Embedder
	embedTimeout time.Duration
}

// Option configures a Heuristic
type Option func(*Heuristic)

// WithEmbedder enables vector similarity through e; Jaccard remains the fallback.
func WithEmbedder(e Embedder) Option {
	return func(h *Heuristic) {
		h.embedder = e
	}
}

// WithEmbedTimeout sets the per-call timeout for embedding requests
func WithEmbedTimeout(d time.Duration) Option {
	return func(h *Heuristic) {
		if d > 0 {
			h.embedTimeout = d
		}
	}
}

// NewHeuristic creates a Heuristic strategy
func NewHeuristic(opts ...Option) *Heuristic {
	h := &Heuristic{embedTimeout: DefaultEmbedTimeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var _ Strategy = (*Heuristic)(nil)
