package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	domainerrors "inventory/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// statusCodes names the router-level failures echo reports as plain HTTP errors.
var statusCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusUnauthorized:          "UNAUTHORIZED",
	http.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
}

// ErrorMiddleware turns handler errors into the console's error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. 5xx responses never carry internal details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if errors.Is(err, context.Canceled) {
		m.log(c).Debug("Client went away", slog.String("route", c.Path()))

		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	var fieldErr *domainerrors.FieldValidationError
	if errors.As(err, &fieldErr) {
		_ = response.BadRequestWithDetails(c, fieldErr.ErrorCode(), fieldErr.Message(), fieldErr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("route", c.Path()),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeHTTPError(c, httpErr)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) writeHTTPError(c echo.Context, httpErr *echo.HTTPError) {
	code, ok := statusCodes[httpErr.Code]
	if !ok {
		code = "HTTP_ERROR"
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}
	if message == "" {
		message = "An error occurred"
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Code)

		return
	}
	_ = response.Error(c, httpErr.Code, code, message, nil)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
