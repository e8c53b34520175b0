package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := Storage("error saving game", errors.New("connection refused"))

	assert.Equal(t, "error saving game: connection refused", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.Code)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("signup: %w", Storage("error creating user", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, Code(err))
}

func TestCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, Code(ErrDuplicateEmail))
	assert.Equal(t, http.StatusUnauthorized, Code(fmt.Errorf("login: %w", ErrInvalidCredentials)))
	assert.Equal(t, http.StatusBadRequest, Code(Validation("email is required")))
	assert.Equal(t, http.StatusInternalServerError, Code(errors.New("plain")))
}

func TestSentinelsMatchWithErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("logout: %w", ErrSessionNotFound)

	assert.ErrorIs(t, wrapped, ErrSessionNotFound)
	assert.NotErrorIs(t, wrapped, ErrInvalidCredentials)
}
