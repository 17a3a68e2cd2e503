// Package server provides the HTTP API for screening candidates.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/server/ratelimit"
	"github.com/jonathan/resume-screener/internal/types"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 10 << 20

// RunStore persists screening runs. *db.DB implements it.
type RunStore interface {
	SaveRun(ctx context.Context, in *db.RunInput) (uuid.UUID, error)
	GetRun(ctx context.Context, id uuid.UUID) (*db.Run, error)
	ListRuns(ctx context.Context, clientID *uuid.UUID, limit int) ([]db.RunSummary, error)
	DeleteRun(ctx context.Context, id uuid.UUID) error
}

var _ RunStore = (*db.DB)(nil)

// Options carries the server's collaborators
type Options struct {
	Engine  *ranking.Engine
	Store   RunStore // nil disables /runs and saving
	JWT     *JWTService
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	cfg        config.Config
	engine     *ranking.Engine
	store      RunStore
	jwt        *JWTService
	logger     *zap.Logger
	metrics    *observability.Metrics
	limiter    *ratelimit.Limiter
	validate   *validator.Validate
	weights    types.Weights // used when a request carries none
}

// New creates a new server instance
func New(cfg config.Config, opts Options) (*Server, error) {
	if opts.Engine == nil {
		return nil, errors.New("scoring engine is required")
	}
	if cfg.Server.RequireAuth && opts.JWT == nil {
		return nil, errors.New("authentication is required but no JWT service is configured")
	}
	weights, err := cfg.ResolveWeights()
	if err != nil {
		return nil, fmt.Errorf("invalid configured weights: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetrics()
	}

	s := &Server{
		cfg:      cfg,
		engine:   opts.Engine,
		store:    opts.Store,
		jwt:      opts.JWT,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		validate: validator.New(),
		weights:  weights,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			Enabled:           cfg.Server.RateLimitPerMinute > 0,
			RequestsPerMinute: cfg.Server.RateLimitPerMinute,
			Burst:             cfg.Server.RateLimitBurst,
		}),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", s.withMetrics("GET /health", http.HandlerFunc(s.handleHealth)))
	mux.Handle("GET /metrics", s.metrics.Handler())
	s.route(mux, "POST /auth/token", s.handleToken, false)

	s.route(mux, "POST /analyze", s.handleAnalyze, true)
	s.route(mux, "POST /similarity", s.handleSimilarity, true)
	s.route(mux, "POST /score", s.handleScore, true)
	s.route(mux, "POST /breakdown", s.handleBreakdown, true)

	s.route(mux, "GET /runs", s.handleListRuns, true)
	s.route(mux, "GET /runs/{id}", s.handleGetRun, true)
	s.route(mux, "DELETE /runs/{id}", s.handleDeleteRun, true)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.withRecover(s.withLogging(s.withCORS(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.limiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defer s.limiter.Stop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources without serving
func (s *Server) Close() {
	s.limiter.Stop()
}

// route registers h with per-route metrics, optional authentication and rate limiting
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc, protected bool) {
	var handler http.Handler = s.withRateLimit(h)
	if protected && s.cfg.Server.RequireAuth {
		handler = middleware.AuthMiddleware(s.jwt.AsTokenValidator(), func(w http.ResponseWriter, _ *http.Request) {
			s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		})(handler)
	}
	mux.Handle(pattern, s.withMetrics(pattern, handler))
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withMetrics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.metrics.ObserveRequest(route, rec.status, time.Since(start))
	})
}

// withLogging logs each request with its status and latency
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", clientIP(r)))
	})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				s.logger.Error("handler panicked", zap.Any("panic", v), zap.String("path", r.URL.Path))
				s.errorResponse(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withRateLimit limits requests per authenticated client, or per IP when unauthenticated
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ip:" + clientIP(r)
		if id, err := middleware.GetClientID(r); err == nil {
			key = "client:" + id.String()
		}

		allowed, info := s.limiter.Allow(key)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		}
		if !allowed {
			s.metrics.RateLimited.Inc()
			s.logger.Info("rate limit exceeded", zap.String("key", key), zap.String("path", r.URL.Path))

			retry := max(1, int(info.RetryAfter.Round(time.Second).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate_limit_exceeded",
				"retry_after": retry,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"database": s.store != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status and logs server-side failures
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		s.logger.Error("request failed", zap.Error(err))
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON reads a bounded JSON body into dst and runs struct validation
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: invalid request body: %v", ErrValidation, err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
