package models

import "time"

// Session represents a persisted login session. The ID doubles as the JWT's
// jti claim, so deleting the row revokes the token.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
