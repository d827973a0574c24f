package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bizlingo/bizlingo-be/internal/auth"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/rs/zerolog/log"
)

// GenerateHandler handles content generation requests.
type GenerateHandler struct {
	generator     services.GenerationServiceProvider
	users         services.UserServiceProvider
	notifications services.NotificationServiceProvider
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generator services.GenerationServiceProvider, users services.UserServiceProvider, notifications services.NotificationServiceProvider) *GenerateHandler {
	return &GenerateHandler{generator: generator, users: users, notifications: notifications}
}

// Generate renders marketing copy for the request. The result is returned to
// the caller only; saving it is a separate POST to /content.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(auth.UserClaimsKey).(*auth.Claims)
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var req services.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Default to the user's preferred language when none is given, the way
	// the generation form pre-fills it.
	if req.Language == "" {
		if user, err := h.users.GetUserByID(claims.UserID); err == nil {
			req.Language = user.LanguagePreference
		}
	}

	result, err := h.generator.Generate(req)
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Failed to generate content")
		writeError(w, err)
		return
	}

	h.notifications.Notify("success", "Content generated successfully!", &claims.UserID)
	writeJSON(w, http.StatusOK, result)
}
