package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-screener/internal/candidates"
	"github.com/jonathan/resume-screener/internal/db"
)

// Errors returned by handlers and mapped to status codes by HTTPStatus
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrRunNotFound      = errors.New("run not found")
	ErrStoreUnavailable = errors.New("run store not configured")
)

// HTTPStatus maps an error to the response status code
func HTTPStatus(err error) int {
	var normErr *candidates.NormalizationError
	var maxBytesErr *http.MaxBytesError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.As(err, &normErr):
		return http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRunNotFound), errors.Is(err, db.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
