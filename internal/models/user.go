package models

import "time"

// User represents a business owner account in the system.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"` // Stored lowercased; unique key for login
	Name               string    `json:"name"`
	BusinessName       string    `json:"businessName,omitempty"`
	Industry           string    `json:"industry,omitempty"`
	LanguagePreference Language  `json:"languagePreference"`
	AvatarURL          string    `json:"avatarUrl,omitempty"`
	PasswordHash       string    `json:"-"` // Never expose this to the client
	CreatedAt          time.Time `json:"createdAt"`
}
