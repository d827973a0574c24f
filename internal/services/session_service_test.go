package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	svc := NewSessionService(newTestDB(t))

	session, err := svc.StartSession("user-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, "user-1", session.UserID)

	// Live session validates.
	assert.NoError(t, svc.ValidateSession(session.ID))

	// Ending the session revokes it.
	require.NoError(t, svc.EndSession(session.ID))
	err = svc.ValidateSession(session.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestEndSessionIsIdempotent(t *testing.T) {
	svc := NewSessionService(newTestDB(t))

	assert.NoError(t, svc.EndSession("never-existed"))
}

func TestValidateSessionRejectsExpired(t *testing.T) {
	svc := NewSessionService(newTestDB(t))

	session, err := svc.StartSession("user-1", -time.Minute)
	require.NoError(t, err)

	err = svc.ValidateSession(session.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestPurgeExpiredRemovesOnlyExpired(t *testing.T) {
	svc := NewSessionService(newTestDB(t))

	expired, err := svc.StartSession("user-1", -time.Minute)
	require.NoError(t, err)
	live, err := svc.StartSession("user-2", time.Hour)
	require.NoError(t, err)

	purged, err := svc.PurgeExpired()
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	assert.Error(t, svc.ValidateSession(expired.ID))
	assert.NoError(t, svc.ValidateSession(live.ID))
}
