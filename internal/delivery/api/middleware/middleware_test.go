package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	mockUC "inventory/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("field validation error keeps details", func(t *testing.T) {
		err := errors.WithStack(domainerrors.NewFieldValidationError(map[string]string{"price": "Price is required"}))

		rec, body := handleError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "Price is required", body.Error.Details["price"])
	})

	t.Run("wrapped app error", func(t *testing.T) {
		rec, body := handleError(t, errors.Wrap(domainerrors.ErrProductNotFound, "get product"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)
	})

	t.Run("echo http error", func(t *testing.T) {
		rec, body := handleError(t, echo.ErrMethodNotAllowed)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)
	})

	t.Run("unmapped echo status keeps generic code", func(t *testing.T) {
		rec, body := handleError(t, echo.NewHTTPError(http.StatusConflict, "busy"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
		assert.Equal(t, "busy", body.Error.Message)
	})

	t.Run("deadline becomes upstream unavailable", func(t *testing.T) {
		rec, body := handleError(t, errors.Wrap(context.DeadlineExceeded, "list products"))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "UPSTREAM_UNAVAILABLE", body.Error.Code)
	})

	t.Run("cancelled request writes nothing", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(context.Canceled, c)

		assert.Empty(t, rec.Body.String())
		assert.False(t, c.Response().Committed)
	})

	t.Run("head request has no body", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

		NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		rec, body := handleError(t, errors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "exploded")
	})
}

func TestAuthMiddleware(t *testing.T) {
	ok := func(c echo.Context) error {
		session, _ := deliverycontext.GetSession(c)

		return c.String(http.StatusOK, session.User.ID)
	}

	t.Run("authenticate stores the session", func(t *testing.T) {
		authUC := mockUC.NewMockAuthUsecase(t)
		session := &entity.Session{User: entity.User{ID: "u1", Role: entity.RoleStaff}}
		authUC.EXPECT().Authenticate(mock.Anything, "abc").Return(session, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer abc")
		rec := httptest.NewRecorder()

		err := NewAuthMiddleware(authUC).Authenticate(ok)(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("authenticate returns use case errors to the error handler", func(t *testing.T) {
		authUC := mockUC.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "abc").Return(nil, domainerrors.ErrUnauthorized)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer abc")

		err := NewAuthMiddleware(authUC).Authenticate(ok)(e.NewContext(req, httptest.NewRecorder()))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("require role", func(t *testing.T) {
		tests := []struct {
			name     string
			role     entity.Role
			wantCode int
		}{
			{name: "admin allowed", role: entity.RoleAdmin, wantCode: http.StatusOK},
			{name: "viewer forbidden", role: entity.RoleViewer, wantCode: http.StatusForbidden},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e := echo.New()
				rec := httptest.NewRecorder()
				c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
				deliverycontext.SetSession(c, &entity.Session{User: entity.User{ID: "u1", Role: tt.role}})

				err := NewAuthMiddleware(nil).RequireRole(entity.RoleAdmin)(ok)(c)

				require.NoError(t, err)
				assert.Equal(t, tt.wantCode, rec.Code)
			})
		}
	})

	t.Run("require role without session", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()

		err := NewAuthMiddleware(nil).RequireRole(entity.RoleAdmin)(ok)(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
