package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// SystemErrorMessage is the fallback message for errors that carry none.
const SystemErrorMessage = "internal server error"

// AppError wraps an underlying error with an HTTP status and a message that
// is safe to show to callers.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil || e.Err.Error() == e.Message {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation reports a bad request caused by the caller's input.
func Validation(err error, message string) *AppError {
	return New(err, http.StatusBadRequest, message)
}

// NotFound reports a missing reference record.
func NotFound(err error, message string) *AppError {
	return New(err, http.StatusNotFound, message)
}

// Upstream reports a failure of an external collaborator.
func Upstream(err error, message string) *AppError {
	return New(err, http.StatusBadGateway, message)
}

// Status returns the HTTP status carried by err, or 500.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// Message returns the caller-facing message carried by err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if err == nil {
		return SystemErrorMessage
	}
	return err.Error()
}
