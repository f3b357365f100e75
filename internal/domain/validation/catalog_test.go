package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidationMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		field  string
		kind   Kind
		value  any
		want   string
	}{
		{name: "required", field: "Email", kind: KindRequired, want: "Email is required"},
		{name: "email", field: "Email", kind: KindEmail, want: "Please enter a valid email address"},
		{name: "password", field: "Password", kind: KindPassword, want: "Password must be at least 6 characters"},
		{name: "phone", field: "Phone", kind: KindPhone, want: "Please enter a valid phone number"},
		{name: "min length", field: "Name", kind: KindMinLength, value: 3, want: "Name must be at least 3 characters"},
		{name: "max length", field: "Name", kind: KindMaxLength, value: 50, want: "Name cannot exceed 50 characters"},
		{name: "min", field: "Stock", kind: KindMin, value: 0, want: "Stock must be at least 0"},
		{name: "max", field: "Stock", kind: KindMax, value: 100, want: "Stock cannot exceed 100"},
		{name: "sku", field: "SKU", kind: KindSKU, want: "SKU must contain only uppercase letters, numbers, and hyphens"},
		{name: "missing param left as written", field: "Name", kind: KindMinLength, want: "Name must be at least {value} characters"},
		{name: "unknown kind", field: "Name", kind: Kind("unique"), want: "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetValidationMessage(tt.field, tt.kind, tt.value))
		})
	}
}

func TestRule_ErrorInterpolatesThreshold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bio cannot exceed 200 characters", MaxLength("Bio", 200).Error())
	assert.Equal(t, "Discount cannot exceed 0.5", Max("Discount", 0.5).Error())
	assert.Equal(t, "custom text", MinLength("Name", 3).WithMessage("custom text").Error())
	assert.Equal(t, "Invalid input", Custom("", func(string, Values) bool { return false }).Error())
}

func TestSchema_FirstFailingRuleWinsPerField(t *testing.T) {
	t.Parallel()

	schema := Schema{
		{Field: "code", Rules: []Rule{Required("Code"), MinLength("Code", 3), SKU("Code")}},
		{Field: "contact", Rules: []Rule{Phone("Contact")}},
	}

	errs := schema.Validate(Values{"code": "", "contact": "08123"})
	assert.Equal(t, FieldErrors{
		"code":    "Code is required",
		"contact": "Please enter a valid phone number",
	}, errs)

	errs = schema.Validate(Values{"code": "ab", "contact": "081234567890"})
	assert.Equal(t, FieldErrors{"code": "Code must be at least 3 characters"}, errs)

	errs = schema.Validate(Values{"code": "abc-1", "contact": "081234567890"})
	assert.Equal(t, FieldErrors{"code": "SKU must contain only uppercase letters, numbers, and hyphens"}, errs)
}
