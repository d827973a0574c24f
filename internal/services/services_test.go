package services

import (
	"database/sql"
	"sync"
	"testing"

	"github.com/bizlingo/bizlingo-be/internal/database"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
// Connections are capped at one so every query sees the same memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// stubNotifier records notifications instead of persisting or broadcasting.
// targets holds the addressed user ID per notification, "" for global.
type stubNotifier struct {
	mu       sync.Mutex
	messages []string
	targets  []string
}

func (n *stubNotifier) Notify(kind, message string, userID *string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, kind+": "+message)
	target := ""
	if userID != nil {
		target = *userID
	}
	n.targets = append(n.targets, target)
}

func (n *stubNotifier) GetRecentNotifications(limit int) ([]models.Notification, error) {
	return nil, nil
}
