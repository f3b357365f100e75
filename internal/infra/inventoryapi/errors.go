package inventoryapi

import (
	"fmt"
	"net/http"

	domainerrors "inventory/internal/domain/errors"
)

// resource tells the error mapping which not-found and conflict errors apply.
type resource int

const (
	resourceAuth resource = iota
	resourceAccount
	resourceProduct
)

// StatusError is an unsuccessful upstream response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
}

// toAppError maps an upstream status to the console's error vocabulary. The upstream message,
// when present, is what the user sees.
func toAppError(status int, message string, res resource) error {
	cause := &StatusError{StatusCode: status, Message: message}

	var base *domainerrors.BaseError
	switch {
	case status == http.StatusUnauthorized && res == resourceAuth:
		base = domainerrors.ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		base = domainerrors.ErrSessionExpired
	case status == http.StatusForbidden:
		base = domainerrors.ErrForbidden
	case status == http.StatusNotFound && res == resourceProduct:
		base = domainerrors.ErrProductNotFound
	case status == http.StatusNotFound:
		base = domainerrors.ErrNotFound
	case status == http.StatusConflict && res == resourceProduct:
		base = domainerrors.ErrProductConflict
	case status == http.StatusConflict:
		base = domainerrors.ErrUserAlreadyExists
	case status >= http.StatusInternalServerError:
		return domainerrors.ErrUpstreamUnavailable.WithDetails(cause.Error())
	default:
		base = domainerrors.ErrUpstreamRejected
	}

	if message != "" {
		base = base.WithMessage(message)
	}

	return base.WithDetails(cause.Error())
}
