package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("registering user: %w", Conflict("an account with this email already exists"))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidationFailedCarriesField(t *testing.T) {
	err := ValidationFailed("email", "email address is not valid")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email", appErr.Field)
	assert.Equal(t, "email address is not valid", appErr.Error())
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestStorageWrapsDriverError(t *testing.T) {
	cause := errors.New("database is locked")
	err := Storage("insert product", cause)

	assert.True(t, errors.Is(err, ErrStorage))
	assert.Contains(t, err.Error(), "insert product")
	assert.Contains(t, err.Error(), "database is locked")
}
