package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/google/uuid"
)

// ContentServiceProvider defines the interface for saved marketing content.
type ContentServiceProvider interface {
	SaveContent(content models.MarketingContent) (models.MarketingContent, error)
	GetAllContent() ([]models.MarketingContent, error)
	DeleteContent(id, userID string) error
	RateContent(id string, rating int, userID string) error
}

// ContentService provides CRUD over saved marketing content.
type ContentService struct {
	db            *sql.DB
	notifications NotificationServiceProvider
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB, notifications NotificationServiceProvider) *ContentService {
	return &ContentService{db: db, notifications: notifications}
}

const contentColumns = "id, owner_id, business_description, product_name, price, selected_language, content_type, generated_text, keywords_json, rating, feedback, created_at"

// scanContent is a helper to scan a content record from a row or rows object.
func scanContent(scanner interface{ Scan(...interface{}) error }) (models.MarketingContent, error) {
	var c models.MarketingContent
	var businessDescription, keywords, feedback sql.NullString
	var price sql.NullFloat64
	var rating sql.NullInt64

	err := scanner.Scan(
		&c.ID, &c.OwnerID, &businessDescription, &c.ProductName, &price,
		&c.SelectedLanguage, &c.ContentType, &c.GeneratedText, &keywords,
		&rating, &feedback, &c.CreatedAt,
	)
	if err != nil {
		return c, err
	}

	c.BusinessDescription = businessDescription.String
	c.KeywordsJSON = keywords.String
	c.Feedback = feedback.String
	if price.Valid {
		c.Price = &price.Float64
	}
	if rating.Valid {
		r := int(rating.Int64)
		c.Rating = &r
	}

	c.PrepareForAPI()
	return c, nil
}

// SaveContent persists a generated result. The caller supplies the rendered
// text; this is the explicit save step after generation.
func (s *ContentService) SaveContent(content models.MarketingContent) (models.MarketingContent, error) {
	if strings.TrimSpace(content.ProductName) == "" {
		return models.MarketingContent{}, apperror.ValidationFailed("productName", "product name is required")
	}
	if strings.TrimSpace(content.GeneratedText) == "" {
		return models.MarketingContent{}, apperror.ValidationFailed("generatedText", "generated text is required")
	}

	content.ID = uuid.New().String()
	content.CreatedAt = time.Now().UTC()
	// Saved content starts unrated; ratings only enter through RateContent,
	// which enforces the [1,5] bounds.
	content.Rating = nil
	content.PrepareForSave()

	var price interface{}
	if content.Price != nil {
		price = *content.Price
	}

	_, err := s.db.Exec(
		"INSERT INTO marketing_content ("+contentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		content.ID, content.OwnerID, content.BusinessDescription, content.ProductName, price,
		content.SelectedLanguage, content.ContentType, content.GeneratedText, content.KeywordsJSON,
		nil, content.Feedback, content.CreatedAt,
	)
	if err != nil {
		return models.MarketingContent{}, apperror.Storage("insert content", err)
	}

	s.notifications.Notify("success", "Content saved", &content.OwnerID)
	return content, nil
}

// GetAllContent retrieves all saved content, newest first.
func (s *ContentService) GetAllContent() ([]models.MarketingContent, error) {
	rows, err := s.db.Query("SELECT " + contentColumns + " FROM marketing_content ORDER BY created_at DESC, id")
	if err != nil {
		return nil, apperror.Storage("select content", err)
	}
	defer rows.Close()

	var contents []models.MarketingContent
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, apperror.Storage("scan content", err)
		}
		contents = append(contents, c)
	}
	return contents, rows.Err()
}

// DeleteContent removes a record by id. Deleting an unknown id is a no-op.
func (s *ContentService) DeleteContent(id, userID string) error {
	res, err := s.db.Exec("DELETE FROM marketing_content WHERE id = ?", id)
	if err != nil {
		return apperror.Storage("delete content", err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		s.notifications.Notify("success", "Content deleted", &userID)
	}
	return nil
}

// RateContent sets the rating on a record, clamping the value into [1,5].
// Rating an unknown id is a silent no-op.
func (s *ContentService) RateContent(id string, rating int, userID string) error {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	res, err := s.db.Exec("UPDATE marketing_content SET rating = ? WHERE id = ?", rating, id)
	if err != nil {
		return apperror.Storage("update content rating", err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		s.notifications.Notify("success", fmt.Sprintf("Rated %d stars", rating), &userID)
	}
	return nil
}
