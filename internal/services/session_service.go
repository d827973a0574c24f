package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/google/uuid"
)

// SessionServiceProvider defines the interface for session lifecycle management.
type SessionServiceProvider interface {
	StartSession(userID string, ttl time.Duration) (models.Session, error)
	ValidateSession(id string) error
	EndSession(id string) error
	PurgeExpired() (int64, error)
}

// SessionService provides business logic for persisted login sessions.
// Sessions survive process restarts; deleting a row revokes the matching JWT.
type SessionService struct {
	db *sql.DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *sql.DB) *SessionService {
	return &SessionService{db: db}
}

// StartSession creates and persists a new session for the user.
func (s *SessionService) StartSession(userID string, ttl time.Duration) (models.Session, error) {
	now := time.Now().UTC()
	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	_, err := s.db.Exec(
		"INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		session.ID, session.UserID, session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("starting session: %w", apperror.Storage("insert session", err))
	}
	return session, nil
}

// ValidateSession checks that a session exists and has not expired.
func (s *SessionService) ValidateSession(id string) error {
	var expiresAt time.Time
	err := s.db.QueryRow("SELECT expires_at FROM sessions WHERE id = ?", id).Scan(&expiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperror.NotFound("session", id)
		}
		return apperror.Storage("select session", err)
	}
	if time.Now().After(expiresAt) {
		return apperror.NotFound("session", id)
	}
	return nil
}

// EndSession deletes a session. Ending an unknown session is a no-op.
func (s *SessionService) EndSession(id string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return apperror.Storage("delete session", err)
	}
	return nil
}

// PurgeExpired removes all sessions past their expiry and reports how many
// were deleted. Called by the background reaper.
func (s *SessionService) PurgeExpired() (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	if err != nil {
		return 0, apperror.Storage("purge sessions", err)
	}
	return res.RowsAffected()
}
