package services

import (
	"database/sql"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificationServiceProvider defines the interface for the notification feed.
// Notify is the collaborator every mutating operation reports through.
type NotificationServiceProvider interface {
	Notify(kind, message string, userID *string)
	GetRecentNotifications(limit int) ([]models.Notification, error)
}

// NotificationService persists notifications and pushes them to connected
// websocket clients.
type NotificationService struct {
	db  *sql.DB
	hub *websocket.Hub
}

// NewNotificationService creates a new NotificationService. hub may be nil
// when no live feed is wanted (e.g., in tests).
func NewNotificationService(db *sql.DB, hub *websocket.Hub) *NotificationService {
	return &NotificationService{db: db, hub: hub}
}

// Notify records a notification and broadcasts it. Failures are logged and
// swallowed: a notification must never fail the operation that emitted it.
func (s *NotificationService) Notify(kind, message string, userID *string) {
	n := models.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO notifications (id, kind, message, user_id, created_at) VALUES (?, ?, ?, ?, ?)",
		n.ID, n.Kind, n.Message, n.UserID, n.CreatedAt,
	)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("Failed to persist notification")
	}

	if s.hub != nil {
		msg := websocket.NewNotificationMessage(n)
		if n.UserID != nil {
			s.hub.BroadcastTo(*n.UserID, msg)
		} else {
			s.hub.Broadcast <- msg
		}
	}
}

// GetRecentNotifications retrieves the most recent notifications.
func (s *NotificationService) GetRecentNotifications(limit int) ([]models.Notification, error) {
	rows, err := s.db.Query(
		"SELECT id, kind, message, user_id, created_at FROM notifications ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Message, &n.UserID, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
