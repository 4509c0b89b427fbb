package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"newsbite/internal/errors"
)

func TestBaseError_WithDetails_KeepsKind(t *testing.T) {
	err := ErrValidationFailed.WithDetails("file extension .exe is not allowed")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_ERROR", err.ErrorCode())
	assert.Equal(t, ErrValidationFailed.Message(), err.Message())
	assert.Equal(t, "file extension .exe is not allowed", err.Details())

	// The predefined value itself must stay untouched.
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WithDetails_SurvivesWrapping(t *testing.T) {
	err := ErrValidationFailed.WithDetails("page size out of range").WrapMessage("list articles")

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestBaseError_Is_DistinguishesKinds(t *testing.T) {
	// Same error code, different predefined value.
	assert.NotErrorIs(t, ErrUserNotFound, ErrArticleNotFound)
	assert.NotErrorIs(t, ErrValidationFailed.WithDetails("x"), ErrInvalidCredentials)
	assert.NotErrorIs(t, ErrValidationFailed, errors.New("Input validation failed"))
}
