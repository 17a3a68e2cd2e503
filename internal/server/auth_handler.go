package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenRequest is the request body for /auth/token
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required,uuid"`
	ClientSecret string `json:"client_secret" validate:"required,max=256"`
}

// TokenResponse is the response for /auth/token
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleToken exchanges client credentials for a bearer token
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.jwt == nil {
		s.errorResponse(w, http.StatusNotFound, "token issuance is not enabled")
		return
	}

	var req TokenRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	client, ok := s.cfg.Server.FindClient(req.ClientID)
	if !ok || !client.VerifySecret(req.ClientSecret) {
		s.logger.Info("token request rejected", zap.String("client_id", req.ClientID))
		s.writeError(w, ErrUnauthorized)
		return
	}

	clientID, err := uuid.Parse(client.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	token, expiresAt, err := s.jwt.GenerateToken(clientID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, TokenResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt})
}
