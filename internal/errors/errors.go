// Package errors combines stdlib error matching with pkg/errors stack traces,
// so packages in the console import a single errors package.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return pkgerrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// AsType is As for callers that only need the typed value.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func WithStack(err error) error { return pkgerrors.WithStack(err) }
