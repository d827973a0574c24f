package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizlingo/bizlingo-be/internal/auth"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ContentHandler handles HTTP requests for saved marketing content.
type ContentHandler struct {
	service services.ContentServiceProvider
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service services.ContentServiceProvider) *ContentHandler {
	return &ContentHandler{service: service}
}

// Save persists a generated result the user chose to keep.
func (h *ContentHandler) Save(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var content models.MarketingContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	content.OwnerID = claims.UserID

	saved, err := h.service.SaveContent(content)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Failed to save content")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// GetAll lists all saved content, newest first.
func (h *ContentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	contents, err := h.service.GetAllContent()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve content")
		writeError(w, err)
		return
	}
	if contents == nil {
		contents = []models.MarketingContent{}
	}
	writeJSON(w, http.StatusOK, contents)
}

// Delete removes a content record. Unknown ids are a no-op.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteContent(id, claims.UserID); err != nil {
		log.Error().Err(err).Str("content_id", id).Msg("Failed to delete content")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RatePayload defines the structure for rating requests.
type RatePayload struct {
	Rating int `json:"rating"`
}

// Rate sets the rating on a content record.
func (h *ContentHandler) Rate(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")

	var payload RatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.RateContent(id, payload.Rating, claims.UserID); err != nil {
		log.Error().Err(err).Str("content_id", id).Msg("Failed to rate content")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
