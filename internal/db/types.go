package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultListLimit is used when ListRuns is called with a non-positive limit
const DefaultListLimit = 50

// MaxListLimit bounds ListRuns
const MaxListLimit = 500

// RunInput is everything persisted for one screening pass
type RunInput struct {
	ClientID       *uuid.UUID
	JobDescription string
	JobURL         string
	Analysis       types.JobAnalysis
	Weights        types.Weights
	Summary        types.ScreeningSummary
	Candidates     []types.ScoredCandidate
}

// Run is a stored screening run with its ranked candidates
type Run struct {
	ID             uuid.UUID               `json:"id"`
	ClientID       *uuid.UUID              `json:"client_id,omitempty"`
	JobDescription string                  `json:"job_description"`
	JobURL         string                  `json:"job_url,omitempty"`
	Analysis       types.JobAnalysis       `json:"job_analysis"`
	Weights        types.Weights           `json:"weights"`
	Summary        types.ScreeningSummary  `json:"summary"`
	Candidates     []types.ScoredCandidate `json:"candidates"`
	CreatedAt      time.Time               `json:"created_at"`
}

// RunSummary is a lightweight view of a run for listing
type RunSummary struct {
	ID        uuid.UUID              `json:"id"`
	ClientID  *uuid.UUID             `json:"client_id,omitempty"`
	JobURL    string                 `json:"job_url,omitempty"`
	Summary   types.ScreeningSummary `json:"summary"`
	CreatedAt time.Time              `json:"created_at"`
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
