package models

import "time"

// Product represents a catalogued product listing.
type Product struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	ImageURL    string    `json:"imageUrl"` // Usually a data URI uploaded from the browser
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}
