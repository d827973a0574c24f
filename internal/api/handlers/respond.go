package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the standard error payload returned by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("Failed to encode JSON response")
		}
	}
}

// writeError maps a service error to its HTTP status code. Errors are
// classified by the apperror sentinels; anything unclassified is a 500.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var kind string

	switch {
	case errors.Is(err, apperror.ErrValidation):
		status, kind = http.StatusBadRequest, "validation_failed"
	case errors.Is(err, apperror.ErrInvalidCredentials):
		status, kind = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, apperror.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, apperror.ErrConflict):
		status, kind = http.StatusConflict, "conflict"
	default:
		status, kind = http.StatusInternalServerError, "internal_error"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Don't leak storage details to the client.
		message = "something went wrong, please try again"
	}

	writeJSON(w, status, ErrorResponse{Error: kind, Message: message})
}
