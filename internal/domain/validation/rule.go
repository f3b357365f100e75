package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Values is a form draft flattened to field name and raw text.
type Values map[string]string

// Rule is one check against a single field. Build rules with the constructors below.
type Rule struct {
	Kind    Kind
	Label   string
	Message string

	limit   float64
	trim    bool
	integer bool
	other   string
	check   func(value string, values Values) bool
}

// WithMessage replaces the catalog message.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// Trimmed makes length rules count the value without surrounding whitespace.
func (r Rule) Trimmed() Rule {
	r.trim = true
	return r
}

// Required fails on empty text. Whitespace counts as present, as it does in the browser form.
func Required(label string) Rule {
	return Rule{Kind: KindRequired, Label: label}
}

// Email uses the anchored address pattern.
func Email(label string) Rule {
	return Rule{Kind: KindEmail, Label: label}
}

// LooseEmail uses the unanchored pattern of the auth forms.
func LooseEmail(label string) Rule {
	return Rule{Kind: KindEmail, Label: label, check: func(v string, _ Values) bool { return LooksLikeEmail(v) }}
}

// Password requires at least six characters.
func Password(label string) Rule {
	return Rule{Kind: KindPassword, Label: label}
}

// Phone requires an Indonesian mobile number.
func Phone(label string) Rule {
	return Rule{Kind: KindPhone, Label: label}
}

// MinLength fails when the value has fewer than n characters.
func MinLength(label string, n int) Rule {
	return Rule{Kind: KindMinLength, Label: label, limit: float64(n)}
}

// MaxLength fails when the value has more than n characters.
func MaxLength(label string, n int) Rule {
	return Rule{Kind: KindMaxLength, Label: label, limit: float64(n)}
}

// Min fails when the numeric value is below n.
func Min(label string, n float64) Rule {
	return Rule{Kind: KindMin, Label: label, limit: n}
}

// Max fails when the numeric value is above n.
func Max(label string, n float64) Rule {
	return Rule{Kind: KindMax, Label: label, limit: n}
}

// SKU allows upper-case letters, digits and dashes only.
func SKU(label string) Rule {
	return Rule{Kind: KindSKU, Label: label}
}

// Match requires the value to equal the field named other.
func Match(label, other string) Rule {
	return Rule{Kind: KindMatch, Label: label, other: other}
}

// NonNegativeNumber requires a parseable number that is not below zero.
func NonNegativeNumber(label string) Rule {
	return Rule{Kind: KindNonNegative, Label: label}
}

// NonNegativeInteger is NonNegativeNumber reading only the integer prefix.
func NonNegativeInteger(label string) Rule {
	return Rule{Kind: KindNonNegative, Label: label, integer: true}
}

// Custom runs fn and reports msg when it returns false.
func Custom(msg string, fn func(value string, values Values) bool) Rule {
	return Rule{Kind: KindCustom, Message: msg, check: fn}
}

// Passes reports whether value satisfies the rule.
func (r Rule) Passes(value string, values Values) bool {
	if r.check != nil {
		return r.check(value, values)
	}

	measured := value
	if r.trim {
		measured = strings.TrimSpace(value)
	}

	switch r.Kind {
	case KindRequired:
		return value != ""
	case KindEmail:
		return IsValidEmail(value)
	case KindPassword:
		return IsStrongPassword(value)
	case KindPhone:
		return IsValidPhone(value)
	case KindMinLength:
		return float64(utf8.RuneCountInString(measured)) >= r.limit
	case KindMaxLength:
		return float64(utf8.RuneCountInString(measured)) <= r.limit
	case KindMin:
		num, ok := ParseFloatPrefix(value)
		return ok && num >= r.limit
	case KindMax:
		num, ok := ParseFloatPrefix(value)
		return ok && num <= r.limit
	case KindSKU:
		return IsValidSKU(value)
	case KindMatch:
		return value == values[r.other]
	case KindNonNegative:
		if value == "" {
			return false
		}
		if r.integer {
			num, ok := ParseIntPrefix(value)
			return ok && num >= 0
		}
		num, ok := ParseFloatPrefix(value)

		return ok && num >= 0
	default:
		return true
	}
}

// Error returns the message reported when the rule fails.
func (r Rule) Error() string {
	if r.Message != "" {
		return r.Message
	}

	var value any
	switch r.Kind {
	case KindMinLength, KindMaxLength, KindMin, KindMax:
		value = strconv.FormatFloat(r.limit, 'f', -1, 64)
	}

	return GetValidationMessage(r.Label, r.Kind, value)
}

// FieldSpec lists the rules of one field, checked in order.
type FieldSpec struct {
	Field string
	Rules []Rule
}

// Schema is an ordered set of field specs.
type Schema []FieldSpec

// Validate checks every field. Inside a field the first failing rule wins.
func (s Schema) Validate(values Values) FieldErrors {
	errs := FieldErrors{}
	for _, spec := range s {
		value := values[spec.Field]
		for _, rule := range spec.Rules {
			if !rule.Passes(value, values) {
				errs[spec.Field] = rule.Error()
				break
			}
		}
	}

	return errs
}
