package services

import (
	"strings"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/catalog"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/rs/zerolog/log"
)

// GenerationRequest describes one content generation call.
type GenerationRequest struct {
	BusinessDescription string             `json:"businessDescription"`
	ProductName         string             `json:"productName"`
	Price               *float64           `json:"price,omitempty"`
	Language            models.Language    `json:"language"`
	ContentType         models.ContentType `json:"contentType"`
	Keywords            []string           `json:"keywords,omitempty"`
}

// GenerationResult is the rendered copy plus the language that was actually
// resolved, which differs from the requested one when the catalog fell back
// to English.
type GenerationResult struct {
	GeneratedText string             `json:"generatedText"`
	Language      models.Language    `json:"language"`
	ContentType   models.ContentType `json:"contentType"`
}

// GenerationServiceProvider defines the interface for content generation.
type GenerationServiceProvider interface {
	Generate(req GenerationRequest) (GenerationResult, error)
}

// GenerationService renders marketing copy from the static template catalog.
// Generation is pure: no storage, no randomness, no clock. Saving a result
// is a separate, explicit call to the content service.
type GenerationService struct{}

// NewGenerationService creates a new GenerationService.
func NewGenerationService() *GenerationService {
	return &GenerationService{}
}

// Generate validates the request and renders the matching template. An
// unsupported language falls back to English rather than failing; a content
// type with no templates at all renders the empty string.
func (s *GenerationService) Generate(req GenerationRequest) (GenerationResult, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return GenerationResult{}, apperror.ValidationFailed("productName", "product name is required")
	}
	if !req.ContentType.Valid() {
		return GenerationResult{}, apperror.ValidationFailed("contentType", "unknown content type")
	}

	text, resolved := catalog.Render(req.ContentType, req.Language, catalog.Request{
		ProductName:         req.ProductName,
		Price:               req.Price,
		BusinessDescription: req.BusinessDescription,
	})

	if resolved != req.Language {
		log.Debug().
			Str("content_type", string(req.ContentType)).
			Str("requested", string(req.Language)).
			Str("resolved", string(resolved)).
			Msg("Template language fallback")
	}

	return GenerationResult{
		GeneratedText: text,
		Language:      resolved,
		ContentType:   req.ContentType,
	}, nil
}
