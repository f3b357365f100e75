package validation

import (
	"maps"
	"slices"
	"strings"
)

// FieldErrors maps a field name to its message. An empty set means the draft is valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Clear drops the message of one field, as the forms do when the user edits it.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

// Merge copies other into e. Messages in other win.
func (e FieldErrors) Merge(other FieldErrors) FieldErrors {
	if e == nil {
		e = FieldErrors{}
	}
	maps.Copy(e, other)

	return e
}

// Fields returns the failing field names in sorted order.
func (e FieldErrors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, field+": "+e[field])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
