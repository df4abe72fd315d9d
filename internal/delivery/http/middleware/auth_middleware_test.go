package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/service"
	mockservice "passport/internal/mocks/service"
)

func newAuthMiddlewareFixture(t *testing.T) (*mockservice.MockTokenService, echo.HandlerFunc) {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	protected := mw.Authenticate(func(c echo.Context) error {
		userID, _ := c.Get(UserIDContextKey).(string)

		return c.String(http.StatusOK, userID)
	})

	return tokenSvc, protected
}

func newEchoContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc, protected := newAuthMiddlewareFixture(t)

	tokenSvc.EXPECT().
		ValidateToken("valid.jwt.token").
		Return(&service.Claims{UserID: "user-123"}, nil).
		Once()

	c, rec := newEchoContext("Bearer valid.jwt.token")
	require.NoError(t, protected(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Body.String())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, protected := newAuthMiddlewareFixture(t)

	c, rec := newEchoContext("")
	require.NoError(t, protected(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestAuthenticate_NotBearer(t *testing.T) {
	_, protected := newAuthMiddlewareFixture(t)

	c, rec := newEchoContext("Basic dXNlcjpwYXNz")
	require.NoError(t, protected(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token format, must be Bearer token"}`, rec.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc, protected := newAuthMiddlewareFixture(t)

	tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, assert.AnError).
		Once()

	c, rec := newEchoContext("Bearer garbage")
	require.NoError(t, protected(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
}

func TestAuthenticate_EmptySubject(t *testing.T) {
	tokenSvc, protected := newAuthMiddlewareFixture(t)

	tokenSvc.EXPECT().
		ValidateToken("no.subject.token").
		Return(&service.Claims{}, nil).
		Once()

	c, rec := newEchoContext("Bearer no.subject.token")
	require.NoError(t, protected(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"User ID missing from token"}`, rec.Body.String())
}
