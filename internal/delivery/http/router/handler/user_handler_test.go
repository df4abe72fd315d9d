package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/delivery/http/middleware"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	mockservice "passport/internal/mocks/service"
	mockusecase "passport/internal/mocks/usecase"
	"passport/internal/usecase"
)

func newUserTestServer(t *testing.T) (*mockusecase.MockUserUsecase, *mockservice.MockTokenService, *echo.Echo) {
	t.Helper()

	userUC := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	h := NewUserHandler(userUC, discardLogger())
	authMW := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho()
	e.GET("/health", HealthCheck)
	e.GET("/api/users/me", h.GetProfile, authMW.Authenticate)
	e.GET("/api/users/:id", h.GetUser)

	return userUC, tokenSvc, e
}

func TestUserHandler_GetUser_Success(t *testing.T) {
	userUC, _, e := newUserTestServer(t)

	userUC.EXPECT().
		FindByID(mock.Anything, "64a0f2c8b1e2d3a4c5b6a7f8").
		Return(&usecase.PublicUser{
			ID:    "64a0f2c8b1e2d3a4c5b6a7f8",
			Name:  "Mario Rossi",
			Email: "mario@example.com",
		}, nil).
		Once()

	rec := doJSONRequest(t, e, http.MethodGet, "/api/users/64a0f2c8b1e2d3a4c5b6a7f8", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"user":{"id":"64a0f2c8b1e2d3a4c5b6a7f8","name":"Mario Rossi","email":"mario@example.com"}}`,
		rec.Body.String())
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	userUC, _, e := newUserTestServer(t)

	userUC.EXPECT().
		FindByID(mock.Anything, "unknown").
		Return(nil, domainerrors.ErrUserNotFound).
		Once()

	rec := doJSONRequest(t, e, http.MethodGet, "/api/users/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestUserHandler_GetProfile_Success(t *testing.T) {
	userUC, tokenSvc, e := newUserTestServer(t)

	tokenSvc.EXPECT().
		ValidateToken("valid.jwt.token").
		Return(&service.Claims{UserID: "64a0f2c8b1e2d3a4c5b6a7f8"}, nil).
		Once()
	userUC.EXPECT().
		FindByID(mock.Anything, "64a0f2c8b1e2d3a4c5b6a7f8").
		Return(&usecase.PublicUser{
			ID:    "64a0f2c8b1e2d3a4c5b6a7f8",
			Name:  "Mario Rossi",
			Email: "mario@example.com",
		}, nil).
		Once()

	rec := doAuthorizedRequest(t, e, http.MethodGet, "/api/users/me", "Bearer valid.jwt.token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"64a0f2c8b1e2d3a4c5b6a7f8"`)
}

func TestUserHandler_GetProfile_TokenSubjectGone(t *testing.T) {
	// A token can outlive its user record.
	userUC, tokenSvc, e := newUserTestServer(t)

	tokenSvc.EXPECT().
		ValidateToken("stale.jwt.token").
		Return(&service.Claims{UserID: "64a0f2c8b1e2d3a4c5b6a7f8"}, nil).
		Once()
	userUC.EXPECT().
		FindByID(mock.Anything, "64a0f2c8b1e2d3a4c5b6a7f8").
		Return(nil, domainerrors.ErrUserNotFound).
		Once()

	rec := doAuthorizedRequest(t, e, http.MethodGet, "/api/users/me", "Bearer stale.jwt.token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestUserHandler_GetProfile_NoToken(t *testing.T) {
	_, _, e := newUserTestServer(t)

	rec := doAuthorizedRequest(t, e, http.MethodGet, "/api/users/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestUserHandler_RouteOrder_MeIsNotAnID(t *testing.T) {
	// The static /me route must win over /:id so "me" never reaches the
	// id lookup.
	_, tokenSvc, e := newUserTestServer(t)

	tokenSvc.EXPECT().
		ValidateToken("bad.token").
		Return(nil, assert.AnError).
		Once()

	rec := doAuthorizedRequest(t, e, http.MethodGet, "/api/users/me", "Bearer bad.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, _, e := newUserTestServer(t)

	rec := doJSONRequest(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
