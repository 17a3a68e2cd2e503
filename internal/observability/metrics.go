package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "resume_screener"

// Metrics holds the Prometheus collectors for scoring and the HTTP API.
// Each Metrics owns its registry so tests and servers do not share state.
type Metrics struct {
	registry *prometheus.Registry

	CandidatesScored   prometheus.Counter
	ScoringDuration    prometheus.Histogram
	SimilarityMethods  *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	RateLimited        prometheus.Counter
	EmbeddingBreaker   prometheus.Gauge
	ScreeningRunsSaved prometheus.Counter
}

// NewMetrics registers all collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		CandidatesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "candidates_scored_total",
			Help:      "Number of candidates scored.",
		}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "scoring_duration_seconds",
			Help:      "Duration of a full scoring pass.",
			Buckets:   prometheus.DefBuckets,
		}),
		SimilarityMethods: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "similarity_total",
			Help:      "Similarity computations by method and outcome.",
		}, []string{"method", "fallback"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		EmbeddingBreaker: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "embedding_breaker_state",
			Help:      "Embedding circuit breaker state (0 closed, 1 half-open, 2 open).",
		}),
		ScreeningRunsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "screening_runs_saved_total",
			Help:      "Screening runs persisted to the database.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CandidatesScored,
		m.ScoringDuration,
		m.SimilarityMethods,
		m.HTTPRequests,
		m.HTTPDuration,
		m.RateLimited,
		m.EmbeddingBreaker,
		m.ScreeningRunsSaved,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveScoring records one scoring pass
func (m *Metrics) ObserveScoring(candidates int, elapsed time.Duration) {
	m.CandidatesScored.Add(float64(candidates))
	m.ScoringDuration.Observe(elapsed.Seconds())
}

// ObserveSimilarity records the method used by a similarity computation
func (m *Metrics) ObserveSimilarity(method string, fellBack bool) {
	m.SimilarityMethods.WithLabelValues(method, strconv.FormatBool(fellBack)).Inc()
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
