package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"
)

const minPasswordLength = 6

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	looseEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern      = regexp.MustCompile(`^(08|628|\+628)[0-9]{8,11}$`)
	skuPattern        = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// IsValidEmail checks the shape of an email address. It is not RFC validation.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// LooksLikeEmail is the looser, unanchored check used by the login, registration and profile forms.
func LooksLikeEmail(s string) bool {
	return looseEmailPattern.MatchString(s)
}

// IsStrongPassword only enforces the minimum length.
func IsStrongPassword(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLength
}

// IsValidPhone checks an Indonesian mobile number.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsRequired reports whether a value is present. Strings must contain a non-space character.
func IsRequired(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// IsInRange parses v as a float and checks min <= v <= max.
func IsInRange(v any, minValue, maxValue float64) bool {
	num, ok := ParseFloatPrefix(v)

	return ok && num >= minValue && num <= maxValue
}

// IsValidSKU checks the SKU charset: uppercase letters, digits and hyphens.
func IsValidSKU(s string) bool {
	return skuPattern.MatchString(s)
}
