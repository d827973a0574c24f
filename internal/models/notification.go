package models

import "time"

// Notification represents a user-facing message emitted by an operation.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // e.g., "success", "error", "info"
	Message   string    `json:"message"`
	UserID    *string   `json:"userId,omitempty"` // Nullable for system-wide notices
	CreatedAt time.Time `json:"createdAt"`
}
