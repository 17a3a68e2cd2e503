package embedding

import (
	"context"
	"time"

	"github.com/jonathan/resume-screener/internal/textanalysis"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// BreakerSettings tunes the circuit breaker around an embedder
type BreakerSettings struct {
	// MaxRequests allowed through while half-open
	MaxRequests uint32
	// Interval is the cyclic period of the closed state for clearing counts
	Interval time.Duration
	// Timeout is how long the breaker stays open
	Timeout time.Duration
	// MinRequests before the failure ratio is considered
	MinRequests uint32
	// FailureThreshold trips the breaker once reached
	FailureThreshold float64
}

// DefaultBreakerSettings returns settings suited to a remote embedding API
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}
}

// StateFunc observes breaker state transitions
type StateFunc func(from, to gobreaker.State)

// BreakerEmbedder short-circuits calls to an unhealthy embedder so similarity
// falls back to Jaccard without waiting on timeouts.
type BreakerEmbedder struct {
	next textanalysis.Embedder
	cb   *gobreaker.CircuitBreaker[[]float32]
}

// NewBreakerEmbedder wraps next with a circuit breaker. onState may be nil.
func NewBreakerEmbedder(next textanalysis.Embedder, s BreakerSettings, logger *zap.Logger, onState StateFunc) *BreakerEmbedder {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := gobreaker.Settings{
		Name:        "embedding",
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= s.MinRequests && failureRatio >= s.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			if onState != nil {
				onState(from, to)
			}
		},
	}

	return &BreakerEmbedder{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]float32](settings),
	}
}

// Embed calls the wrapped embedder unless the breaker is open
func (b *BreakerEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return b.cb.Execute(func() ([]float32, error) {
		return b.next.Embed(ctx, text)
	})
}

// State reports the current breaker state
func (b *BreakerEmbedder) State() gobreaker.State {
	return b.cb.State()
}

var _ textanalysis.Embedder = (*BreakerEmbedder)(nil)
var _ textanalysis.Embedder = (*GeminiEmbedder)(nil)
