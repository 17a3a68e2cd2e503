package server

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, clientID uuid.UUID, secret string) config.Config {
	t.Helper()
	hash, err := config.HashSecret(secret, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Server.RequireAuth = true
	cfg.Server.Clients = []config.APIClient{{ID: clientID.String(), Name: "ats", SecretHash: hash}}
	return cfg
}

func TestAuthFlow(t *testing.T) {
	clientID := uuid.New()
	store := newMemoryStore()
	s := newTestServer(t, authConfig(t, clientID, "s3cret"), store, testJWTService())
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{JobDescription: testJob})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/auth/token", TokenRequest{ClientID: clientID.String(), ClientSecret: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/auth/token", TokenRequest{ClientID: clientID.String(), ClientSecret: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[TokenResponse](t, rec)
	assert.Equal(t, "Bearer", token.TokenType)

	auth := []string{"Authorization", "Bearer " + token.Token}
	rec = doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{JobDescription: testJob}, auth...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/score", ScoreRequest{JobDescription: testJob, Candidates: testCandidates(), Save: true}, auth...)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ScoreResponse](t, rec)
	require.NotNil(t, resp.RunID)

	run, err := store.GetRun(t.Context(), *resp.RunID)
	require.NoError(t, err)
	require.NotNil(t, run.ClientID)
	assert.Equal(t, clientID, *run.ClientID)

	// Another client cannot see the run
	otherToken, _, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)
	rec = doJSON(t, h, http.MethodGet, "/runs/"+resp.RunID.String(), nil, "Authorization", "Bearer "+otherToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/runs/"+resp.RunID.String(), nil, auth...)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToken_Disabled(t *testing.T) {
	s := newTestServer(t, testConfig(), nil, nil)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/auth/token", TokenRequest{ClientID: uuid.NewString(), ClientSecret: "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToken_Validation(t *testing.T) {
	s := newTestServer(t, authConfig(t, uuid.New(), "s3cret"), nil, testJWTService())
	rec := doJSON(t, s.Handler(), http.MethodPost, "/auth/token", TokenRequest{ClientID: "not-a-uuid", ClientSecret: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
