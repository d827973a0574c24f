// Package catalog holds the static marketing copy templates, keyed by
// content type and language, and the resolution rule for looking them up.
package catalog

import (
	"strconv"
	"strings"

	"github.com/bizlingo/bizlingo-be/internal/models"
)

// Request carries the fields a template can interpolate. Rendering is pure:
// the same request always produces the same text.
type Request struct {
	ProductName         string
	Price               *float64
	BusinessDescription string
}

// TemplateFn renders a request into final copy.
type TemplateFn func(Request) string

// Resolve looks up the template for (contentType, language). When the exact
// language is not populated it falls back to English for the same content
// type. The returned language is the one actually resolved, so callers can
// tell a fallback happened. ok is false when neither slot is populated.
func Resolve(contentType models.ContentType, language models.Language) (TemplateFn, models.Language, bool) {
	byLanguage, exists := templates[contentType]
	if !exists {
		return nil, language, false
	}
	if fn, exists := byLanguage[language]; exists {
		return fn, language, true
	}
	if fn, exists := byLanguage[models.LanguageEnglish]; exists {
		return fn, models.LanguageEnglish, true
	}
	return nil, language, false
}

// Render resolves and renders in one step. An unpopulated (contentType,
// language) pair with no English fallback yields the empty string.
func Render(contentType models.ContentType, language models.Language, req Request) (string, models.Language) {
	fn, resolved, ok := Resolve(contentType, language)
	if !ok {
		return "", resolved
	}
	return fn(req), resolved
}

// hasPrice reports whether a request carries a displayable price. A zero
// price is treated as absent, so the price clause is omitted for it.
func hasPrice(req Request) bool {
	return req.Price != nil && *req.Price != 0
}

// rupees formats a price the way the frontend displays it: no trailing
// zeros, no grouping.
func rupees(price *float64) string {
	if price == nil {
		return ""
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}

// hashtagify collapses all whitespace in a product name so it can be used
// as a hashtag.
func hashtagify(name string) string {
	return strings.Join(strings.Fields(name), "")
}
