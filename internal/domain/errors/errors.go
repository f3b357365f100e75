package errors

import (
	"net/http"

	"inventory/internal/errors"
)

// AppError is an error the HTTP layer can render for the user.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is safe to show to the user.
	Message() string
	// Details is for logs only.
	Details() string
}

// BaseError is a value-like AppError. The predefined errors below are shared and must not be mutated.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage annotates the error with a stack and a log-only message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches on the error code, so copies made by WithDetails or WithMessage still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

func (e *BaseError) WithMessage(message string) *BaseError {
	c := *e
	c.message = message

	return &c
}

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Sessions
var (
	ErrInvalidCredentials    = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized          = define(http.StatusUnauthorized, "UNAUTHORIZED", "Please log in to continue")
	ErrSessionExpired        = define(http.StatusUnauthorized, "SESSION_EXPIRED", "Your session has expired, please log in again")
	ErrSessionNotFound       = define(http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
	ErrSessionCreationFailed = define(http.StatusInternalServerError, "SESSION_CREATION_FAILED", "Failed to start a session")
	ErrUserAlreadyExists     = define(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrForbidden             = define(http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action")
)

// Products
var (
	ErrValidationFailed      = define(http.StatusBadRequest, "VALIDATION_FAILED", "Please fix the highlighted fields")
	ErrProductNotFound       = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrProductConflict       = define(http.StatusConflict, "PRODUCT_CONFLICT", "A product with this SKU already exists")
	ErrLabelGenerationFailed = define(http.StatusInternalServerError, "LABEL_GENERATION_FAILED", "Failed to generate product label")
	ErrNotFound              = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
)

// Upstream inventory API
var (
	ErrUpstreamRejected    = define(http.StatusBadRequest, "UPSTREAM_REJECTED", "The inventory service rejected the request")
	ErrUpstreamUnavailable = define(http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "The inventory service is unavailable")
)

// DatabaseExecuteError hides a failed console-store query behind a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
