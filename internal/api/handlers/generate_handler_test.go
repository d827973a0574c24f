package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/auth"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/bizlingo/bizlingo-be/internal/services"
)

type stubGenerator struct {
	lastReq services.GenerationRequest
	result  services.GenerationResult
	err     error
}

func (s *stubGenerator) Generate(req services.GenerationRequest) (services.GenerationResult, error) {
	s.lastReq = req
	return s.result, s.err
}

type stubUsers struct {
	user models.User
	err  error
}

func (s *stubUsers) GetUserByID(id string) (models.User, error) { return s.user, s.err }
func (s *stubUsers) Register(name, email, password string) (models.User, error) {
	return models.User{}, nil
}
func (s *stubUsers) Authenticate(email, password string) (models.User, error) {
	return models.User{}, nil
}
func (s *stubUsers) UpdateProfile(id string, update services.ProfileUpdate) (models.User, error) {
	return models.User{}, nil
}

type recordingNotifier struct {
	messages []string
}

func (s *recordingNotifier) Notify(kind, message string, userID *string) {
	s.messages = append(s.messages, message)
}

func (s *recordingNotifier) GetRecentNotifications(limit int) ([]models.Notification, error) {
	return nil, nil
}

func authedRequest(t *testing.T, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(payload))
	claims := &auth.Claims{UserID: "user-1", Email: "owner@example.com"}
	return req.WithContext(context.WithValue(req.Context(), auth.UserClaimsKey, claims))
}

func TestGenerateHandler_Success(t *testing.T) {
	generator := &stubGenerator{result: services.GenerationResult{
		GeneratedText: "Introducing Clay Diyas!",
		Language:      models.LanguageEnglish,
		ContentType:   models.ContentTypeCaption,
	}}
	notifier := &recordingNotifier{}
	handler := NewGenerateHandler(generator, &stubUsers{}, notifier)

	req := authedRequest(t, services.GenerationRequest{
		ProductName: "Clay Diyas",
		Language:    models.LanguageEnglish,
		ContentType: models.ContentTypeCaption,
	})
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result services.GenerationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Introducing Clay Diyas!", result.GeneratedText)
	assert.Contains(t, notifier.messages, "Content generated successfully!")
}

func TestGenerateHandler_DefaultsToPreferredLanguage(t *testing.T) {
	generator := &stubGenerator{}
	users := &stubUsers{user: models.User{ID: "user-1", LanguagePreference: models.LanguageHindi}}
	handler := NewGenerateHandler(generator, users, &recordingNotifier{})

	req := authedRequest(t, services.GenerationRequest{
		ProductName: "Clay Diyas",
		ContentType: models.ContentTypeCaption,
	})
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.LanguageHindi, generator.lastReq.Language)
}

func TestGenerateHandler_ValidationErrorIsBadRequest(t *testing.T) {
	generator := &stubGenerator{err: apperror.ValidationFailed("productName", "product name is required")}
	notifier := &recordingNotifier{}
	handler := NewGenerateHandler(generator, &stubUsers{}, notifier)

	req := authedRequest(t, services.GenerationRequest{ContentType: models.ContentTypeCaption})
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	assert.Empty(t, notifier.messages, "failed generations must not notify")
}

func TestGenerateHandler_StorageErrorHidesDetails(t *testing.T) {
	generator := &stubGenerator{err: apperror.Storage("generate", assert.AnError)}
	handler := NewGenerateHandler(generator, &stubUsers{}, &recordingNotifier{})

	req := authedRequest(t, services.GenerationRequest{
		ProductName: "Clay Diyas",
		ContentType: models.ContentTypeCaption,
	})
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Error)
	assert.NotContains(t, resp.Message, assert.AnError.Error())
}

func TestGenerateHandler_MissingClaims(t *testing.T) {
	handler := NewGenerateHandler(&stubGenerator{}, &stubUsers{}, &recordingNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	handler.Generate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
