// Package errors defines the application error taxonomy shared by all layers.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error values. The messages are part of the API contract and
// must not be reworded without versioning the endpoints that surface them.
var (
	// Input validation errors
	ErrNameEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Name and email are required",
		"",
	)

	ErrInvalidEmailFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid email format",
		"",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Password is required",
		"",
	)

	ErrEmailPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Email and password are required",
		"",
	)

	ErrRegistrationFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Name, email, and password are required",
		"",
	)

	// Account errors
	ErrDuplicateEmail = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_EMAIL",
		"A user with this email already exists",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Authentication errors. A missing account and a wrong password share
	// the same value so callers cannot probe which addresses are registered.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)
)

// InternalError wraps an unexpected infrastructure failure, surfacing the
// underlying message to the boundary as a 500.
type InternalError struct {
	err error
}

// NewInternalError creates an internal error carrying the cause's message.
func NewInternalError(err error) AppError {
	return &InternalError{err: err}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *InternalError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *InternalError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *InternalError) ErrorCode() string {
	return "INTERNAL_ERROR"
}

// Message returns the underlying failure message
func (e *InternalError) Message() string {
	return e.err.Error()
}

// Details returns detailed error information
func (e *InternalError) Details() string {
	return ""
}
