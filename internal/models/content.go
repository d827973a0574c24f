package models

import (
	"encoding/json"
	"time"
)

// MarketingContent represents a saved piece of generated marketing copy.
type MarketingContent struct {
	ID                  string      `json:"id"`
	OwnerID             string      `json:"ownerId"`
	BusinessDescription string      `json:"businessDescription"`
	ProductName         string      `json:"productName"`
	Price               *float64    `json:"price,omitempty"`
	SelectedLanguage    Language    `json:"selectedLanguage"`
	ContentType         ContentType `json:"contentType"`
	GeneratedText       string      `json:"generatedText"`
	Rating              *int        `json:"rating,omitempty"` // 1..5 once set
	Feedback            string      `json:"feedback,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`

	// JSON string field for DB storage
	KeywordsJSON string `json:"-"`

	// Slice field for API interaction
	Keywords []string `json:"keywords"`
}

// PrepareForSave marshals the keyword slice into its JSON string for DB storage.
func (c *MarketingContent) PrepareForSave() {
	if c.Keywords == nil {
		c.Keywords = []string{}
	}
	keywordsBytes, _ := json.Marshal(c.Keywords)
	c.KeywordsJSON = string(keywordsBytes)
}

// PrepareForAPI unmarshals the keywords JSON string back into the slice for API responses.
func (c *MarketingContent) PrepareForAPI() {
	c.Keywords = []string{}
	if c.KeywordsJSON != "" {
		json.Unmarshal([]byte(c.KeywordsJSON), &c.Keywords)
	}
}
