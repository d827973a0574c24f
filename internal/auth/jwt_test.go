package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUserAndSession() (models.User, models.Session) {
	now := time.Now()
	user := models.User{ID: "user-1", Email: "asha@biz.com", Name: "Asha"}
	session := models.Session{
		ID:        "session-1",
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
	return user, session
}

func TestGenerateAndValidateJWT(t *testing.T) {
	user, session := testUserAndSession()

	token, err := GenerateJWT(user, session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, session.ID, claims.ID)
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	user, session := testUserAndSession()

	token, err := GenerateJWT(user, session)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateJWT(tampered)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	user, session := testUserAndSession()
	session.CreatedAt = time.Now().Add(-48 * time.Hour)
	session.ExpiresAt = time.Now().Add(-24 * time.Hour)

	token, err := GenerateJWT(user, session)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestTokenFromRequestPrefersHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})

	assert.Equal(t, "header-token", TokenFromRequest(r))
}

func TestTokenFromRequestFallsBackToCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})

	assert.Equal(t, "cookie-token", TokenFromRequest(r))
}
