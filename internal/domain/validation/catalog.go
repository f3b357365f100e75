package validation

import (
	"fmt"
	"strings"
)

// Kind names a rule in the registry.
type Kind string

const (
	KindRequired    Kind = "required"
	KindEmail       Kind = "email"
	KindPassword    Kind = "password"
	KindPhone       Kind = "phone"
	KindMinLength   Kind = "minLength"
	KindMaxLength   Kind = "maxLength"
	KindMin         Kind = "min"
	KindMax         Kind = "max"
	KindSKU         Kind = "sku"
	KindMatch       Kind = "match"
	KindNonNegative Kind = "nonNegative"
	KindCustom      Kind = "custom"
)

const defaultMessage = "Invalid input"

var catalog = map[Kind]string{
	KindRequired:    "{field} is required",
	KindEmail:       "Please enter a valid email address",
	KindPassword:    "Password must be at least 6 characters",
	KindPhone:       "Please enter a valid phone number",
	KindMinLength:   "{field} must be at least {value} characters",
	KindMaxLength:   "{field} cannot exceed {value} characters",
	KindMin:         "{field} must be at least {value}",
	KindMax:         "{field} cannot exceed {value}",
	KindSKU:         "SKU must contain only uppercase letters, numbers, and hyphens",
	KindMatch:       "{field} do not match",
	KindNonNegative: "{field} must be a non-negative number",
}

// GetValidationMessage renders the catalog template for kind. Unknown kinds yield "Invalid input".
// A nil value leaves the {value} placeholder as written.
func GetValidationMessage(field string, kind Kind, value any) string {
	tmpl, ok := catalog[kind]
	if !ok {
		return defaultMessage
	}

	pairs := []string{"{field}", field}
	if value != nil {
		pairs = append(pairs, "{value}", fmt.Sprint(value))
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
