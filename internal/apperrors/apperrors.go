package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a failure maps to, the message that is safe
// to show to the client and the underlying cause, which is only ever logged.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidCredentials = NewAppError(http.StatusUnauthorized, "Invalid username or password", nil)
	ErrDuplicateEmail     = NewAppError(http.StatusConflict, "email already exists", nil)
	ErrSessionNotFound    = NewAppError(http.StatusNotFound, "No session was found", nil)
)

// Storage wraps a persistence failure. The cause is kept for logging, the client
// only ever sees a generic internal error.
func Storage(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// Code returns the status carried by err, or 500 when err is not an AppError.
func Code(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
