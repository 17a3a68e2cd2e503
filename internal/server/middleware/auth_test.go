package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClaims struct {
	clientID uuid.UUID
}

func (c *testClaims) GetClientID() uuid.UUID {
	return c.clientID
}

type testTokenValidator struct {
	valid map[string]uuid.UUID
}

func (v *testTokenValidator) ValidateToken(token string) (ClientIDGetter, error) {
	id, ok := v.valid[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &testClaims{clientID: id}, nil
}

func TestAuthMiddleware(t *testing.T) {
	clientID := uuid.New()
	validator := &testTokenValidator{valid: map[string]uuid.UUID{"good-token": clientID}}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"case-insensitive scheme", "bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized},
		{"extra parts", "Bearer good-token extra", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uuid.UUID
			handler := AuthMiddleware(validator, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := GetClientID(r)
				require.NoError(t, err)
				seen = id
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/runs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, clientID, seen)
			}
		})
	}
}

func TestAuthMiddleware_CustomReject(t *testing.T) {
	handler := AuthMiddleware(&testTokenValidator{}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestGetClientID_Missing(t *testing.T) {
	_, err := GetClientID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoClient)
}
