package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"go.uber.org/zap"
)

// ListRunsResponse is the response for GET /runs
type ListRunsResponse struct {
	Runs  []db.RunSummary `json:"runs"`
	Count int             `json:"count"`
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, fmt.Errorf("%w: limit must be a non-negative integer", ErrValidation))
			return
		}
		limit = n
	}

	runs, err := s.store.ListRuns(r.Context(), s.requestClient(r), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListRunsResponse{Runs: runs, Count: len(runs)})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.lookupRun(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteRun(r.Context(), run.ID); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("screening run deleted", zap.String("run_id", run.ID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// lookupRun loads the run named by the {id} path value. Runs owned by another
// client are reported as not found.
func (s *Server) lookupRun(w http.ResponseWriter, r *http.Request) (*db.Run, bool) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: invalid run ID", ErrValidation))
		return nil, false
	}

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	if run == nil || !owns(s.requestClient(r), run.ClientID) {
		s.writeError(w, ErrRunNotFound)
		return nil, false
	}
	return run, true
}

// requestClient returns the authenticated client, or nil when auth is disabled
func (s *Server) requestClient(r *http.Request) *uuid.UUID {
	id, err := middleware.GetClientID(r)
	if err != nil {
		return nil
	}
	return &id
}

func owns(client, owner *uuid.UUID) bool {
	if client == nil {
		return true
	}
	return owner != nil && *owner == *client
}
