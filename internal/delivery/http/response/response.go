// Package response contains the JSON shapes crossing the HTTP boundary.
package response

import (
	"github.com/labstack/echo/v4"

	"passport/internal/usecase"
)

// UserEnvelope wraps a public user projection for read responses.
type UserEnvelope struct {
	User *usecase.PublicUser `json:"user"`
}

// ErrorBody is the uniform error response body.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes an arbitrary success payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// User writes a user read response.
func User(c echo.Context, statusCode int, user *usecase.PublicUser) error {
	return c.JSON(statusCode, UserEnvelope{User: user})
}

// Error writes the uniform error body.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}
