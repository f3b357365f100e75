package errors

import (
	"net/http"
)

// FieldValidationError is a 400 carrying one message per failing form field.
type FieldValidationError struct {
	fields map[string]string
}

// NewFieldValidationError wraps the per-field messages of a form validator.
func NewFieldValidationError(fields map[string]string) *FieldValidationError {
	return &FieldValidationError{fields: fields}
}

func (e *FieldValidationError) Error() string {
	return ErrValidationFailed.Error()
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *FieldValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *FieldValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *FieldValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *FieldValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *FieldValidationError) Details() string {
	return ""
}

// Fields returns the field to message map rendered as response details.
func (e *FieldValidationError) Fields() map[string]string {
	return e.fields
}
