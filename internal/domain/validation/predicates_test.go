package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain address", input: "user@example.com", want: true},
		{name: "subdomain", input: "a.b@mail.example.co.id", want: true},
		{name: "missing at", input: "user.example.com", want: false},
		{name: "missing dot after at", input: "user@example", want: false},
		{name: "embedded space", input: "us er@example.com", want: false},
		{name: "surrounding text", input: "mail me at user@example.com", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValidEmail(tt.input))
		})
	}
}

func TestLooksLikeEmail_Unanchored(t *testing.T) {
	t.Parallel()

	assert.True(t, LooksLikeEmail("mail me at user@example.com"))
	assert.False(t, LooksLikeEmail("user@example"))
	assert.False(t, LooksLikeEmail(""))
}

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	assert.True(t, IsStrongPassword("abcdef"))
	assert.False(t, IsStrongPassword("abcde"))
	assert.True(t, IsStrongPassword("kata sandi"))
}

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "081234567890", want: true},
		{input: "6281234567890", want: true},
		{input: "+6281234567890", want: true},
		{input: "0812345", want: false},
		{input: "0712345678", want: false},
		{input: "08123456789012", want: false},
		{input: "08-1234-5678", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValidPhone(tt.input))
		})
	}
}

func TestIsRequired(t *testing.T) {
	t.Parallel()

	var nilSlice []string
	var nilPtr *int
	zero := 0

	assert.False(t, IsRequired(nil))
	assert.False(t, IsRequired(""))
	assert.False(t, IsRequired("   "))
	assert.True(t, IsRequired(" x "))
	assert.True(t, IsRequired(0))
	assert.True(t, IsRequired(false))
	assert.False(t, IsRequired(nilSlice))
	assert.False(t, IsRequired(nilPtr))
	assert.True(t, IsRequired(&zero))
}

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInRange("5", 0, 10))
	assert.True(t, IsInRange(0, 0, 10))
	assert.True(t, IsInRange("10kg", 0, 10))
	assert.False(t, IsInRange("10.5", 0, 10))
	assert.False(t, IsInRange("-1", 0, 10))
	assert.False(t, IsInRange("abc", 0, 10))
}

func TestIsValidSKU(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidSKU("ELEC-001"))
	assert.True(t, IsValidSKU("ABC"))
	assert.False(t, IsValidSKU("elec-001"))
	assert.False(t, IsValidSKU("ELEC 001"))
	assert.False(t, IsValidSKU(""))
}
