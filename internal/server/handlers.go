package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/candidates"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/textanalysis"
	"github.com/jonathan/resume-screener/internal/types"
	"go.uber.org/zap"
)

// maxKeyPhrases is the number of key phrases returned by /analyze
const maxKeyPhrases = 10

// AnalyzeRequest is the request body for /analyze
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required,max=200000"`
}

// AnalyzeResponse is the response for /analyze
type AnalyzeResponse struct {
	types.JobAnalysis
	SkillCategories map[string][]string `json:"skill_categories"`
	KeyPhrases      []string            `json:"key_phrases"`
}

// SimilarityRequest is the request body for /similarity
type SimilarityRequest struct {
	TextA string `json:"text_a" validate:"required,max=200000"`
	TextB string `json:"text_b" validate:"required,max=200000"`
}

// ScoreRequest is the request body for /score
type ScoreRequest struct {
	JobDescription string                  `json:"job_description" validate:"required,max=200000"`
	JobURL         string                  `json:"job_url,omitempty" validate:"omitempty,url"`
	Candidates     []types.CandidateRecord `json:"candidates" validate:"required,min=1,max=1000"`
	Weights        *types.Weights          `json:"weights,omitempty"`
	MinScore       float64                 `json:"min_score,omitempty"`
	SortBy         string                  `json:"sort_by,omitempty"`
	TopN           int                     `json:"top_n,omitempty"`
	Save           bool                    `json:"save,omitempty"`
}

// ScoreResponse is the response for /score
type ScoreResponse struct {
	RunID      *uuid.UUID              `json:"run_id,omitempty"`
	Analysis   types.JobAnalysis       `json:"job_analysis"`
	Candidates []types.ScoredCandidate `json:"candidates"`
	Shortlist  []types.ScoredCandidate `json:"shortlist"`
	Summary    types.ScreeningSummary  `json:"summary"`
}

// BreakdownRequest is the request body for /breakdown
type BreakdownRequest struct {
	Candidate types.ScoredCandidate `json:"candidate"`
	Weights   *types.Weights        `json:"weights,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	analysis := s.engine.AnalyzeJob(req.JobDescription)
	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		JobAnalysis:     analysis,
		SkillCategories: textanalysis.CategorizeSkills(analysis.RequiredSkills),
		KeyPhrases:      textanalysis.ExtractKeyPhrases(req.JobDescription, maxKeyPhrases),
	})
}

func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	var req SimilarityRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Similarity(req.TextA, req.TextB))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	weights, err := s.requestWeights(req.Weights)
	if err != nil {
		s.writeError(w, err)
		return
	}
	filter := ranking.FilterOptions{MinScore: req.MinScore, SortBy: req.SortBy, TopN: req.TopN}
	if err := filter.Validate(); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", ErrValidation, err))
		return
	}
	if req.Save && s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}
	if err := candidates.NormalizeCandidates(req.Candidates); err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	scored, analysis := s.engine.ScoreWithAnalysis(req.Candidates, req.JobDescription, weights)
	s.metrics.ObserveScoring(len(scored), time.Since(start))

	threshold := s.shortlistThreshold()
	resp := ScoreResponse{
		Analysis:   analysis,
		Candidates: ranking.Filter(scored, filter),
		Shortlist:  ranking.Shortlist(scored, threshold),
		Summary:    ranking.Summarize(scored, threshold),
	}

	if req.Save {
		in := &db.RunInput{
			JobDescription: req.JobDescription,
			JobURL:         req.JobURL,
			Analysis:       resp.Analysis,
			Weights:        weights,
			Summary:        resp.Summary,
			Candidates:     scored,
		}
		if id, err := middleware.GetClientID(r); err == nil {
			in.ClientID = &id
		}

		id, err := s.store.SaveRun(r.Context(), in)
		if err != nil {
			s.writeError(w, fmt.Errorf("failed to save run: %w", err))
			return
		}
		s.metrics.ScreeningRunsSaved.Inc()
		s.logger.Info("screening run saved", zap.String("run_id", id.String()), zap.Int("candidates", len(scored)))
		resp.RunID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	var req BreakdownRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	weights, err := s.requestWeights(req.Weights)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ranking.GetScoringBreakdown(req.Candidate, weights))
}

// requestWeights returns the configured weights for nil and rejects weights that do not sum to 1
func (s *Server) requestWeights(w *types.Weights) (types.Weights, error) {
	if w == nil {
		return s.weights, nil
	}
	if err := w.Validate(); err != nil {
		return types.Weights{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return *w, nil
}

func (s *Server) shortlistThreshold() float64 {
	if s.cfg.ShortlistThreshold > 0 {
		return s.cfg.ShortlistThreshold
	}
	return ranking.DefaultShortlistThreshold
}
