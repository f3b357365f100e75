// Package response renders the console's JSON envelope.
package response

import (
	"net/http"

	deliverycontext "inventory/internal/delivery/context"
	domainerrors "inventory/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries a machine-readable code, a message for the user and, for 4xx, the failing fields.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo is attached to every response.
type MetaInfo struct {
	RequestID   string       `json:"request_id"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

// Permissions tell the renderer which product actions to offer the signed-in user.
type Permissions struct {
	Role      string `json:"role"`
	CanWrite  bool   `json:"canWrite"`
	CanDelete bool   `json:"canDelete"`
}

func newMeta(c echo.Context) *MetaInfo {
	meta := &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}

	if session, ok := deliverycontext.GetSession(c); ok {
		role := session.Role()
		meta.Permissions = &Permissions{
			Role:      role.String(),
			CanWrite:  role.CanWriteProducts(),
			CanDelete: role.CanDeleteProducts(),
		}
	}

	return meta
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: newMeta(c)})
}

// Error writes an error envelope. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: newMeta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails answers 400 with a field → message map.
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError answers 400 for bodies or parameters that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors. Anything else is returned for the error middleware.
func HandleAppError(c echo.Context, err error) error {
	var fieldErr *domainerrors.FieldValidationError
	if errors.As(err, &fieldErr) {
		return BadRequestWithDetails(c, fieldErr.ErrorCode(), fieldErr.Message(), fieldErr.Fields())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
