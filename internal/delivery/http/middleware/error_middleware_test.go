package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewErrorMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	// Handlers annotate errors with a stack; the mapping must still see
	// through the wrapping.
	rec := handleError(t, errors.WithStack(domainerrors.ErrUserNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestHandleHTTPError_InternalCarriesCause(t *testing.T) {
	rec := handleError(t, domainerrors.NewInternalError(errors.New("connection reset by peer")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"connection reset by peer"}`, rec.Body.String())
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}

func TestHandleHTTPError_LogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewErrorMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/x", nil)
	req = req.WithContext(deliverycontext.WithRequestID(req.Context(), "req-42"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewErrorMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, c.String(http.StatusOK, "ok"))
	mw.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
