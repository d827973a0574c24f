package handlers

import (
	"net/http"
	"strconv"

	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/rs/zerolog/log"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	service services.NotificationServiceProvider
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service services.NotificationServiceProvider) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetRecent lists the most recent notifications. Defaults to 50, capped at 200.
func (h *NotificationHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	notifications, err := h.service.GetRecentNotifications(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve notifications")
		writeError(w, err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}
