package validation

import (
	"testing"

	"inventory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func validProductDraft() entity.ProductDraft {
	return entity.ProductDraft{
		Name:     "Wireless Mouse",
		SKU:      "SKU123",
		Category: "Electronics",
		Price:    "10",
		Cost:     "5",
		Stock:    "3",
		MinStock: "1",
		Unit:     "pcs",
	}
}

func TestValidateProduct_ShortNameOnly(t *testing.T) {
	t.Parallel()

	d := validProductDraft()
	d.Name = "AB"

	assert.Equal(t, FieldErrors{"name": "Product name must be at least 3 characters"}, ValidateProduct(d))
}

func TestValidateProduct_ReportsEveryField(t *testing.T) {
	t.Parallel()

	errs := ValidateProduct(entity.ProductDraft{})
	assert.Equal(t, FieldErrors{
		"name":     "Product name must be at least 3 characters",
		"sku":      "SKU must be at least 3 characters",
		"category": "Category is required",
		"price":    "Price must be a positive number",
		"cost":     "Cost must be a positive number",
		"stock":    "Stock must be a non-negative number",
		"minStock": "Minimum stock must be a non-negative number",
		"unit":     "Unit is required",
	}, errs)
}

func TestValidateProduct_FieldCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*entity.ProductDraft)
		want   FieldErrors
	}{
		{
			name:   "valid draft",
			mutate: func(*entity.ProductDraft) {},
			want:   FieldErrors{},
		},
		{
			name:   "name padded with spaces",
			mutate: func(d *entity.ProductDraft) { d.Name = "  AB  " },
			want:   FieldErrors{"name": "Product name must be at least 3 characters"},
		},
		{
			name:   "lowercase sku is accepted",
			mutate: func(d *entity.ProductDraft) { d.SKU = "abc" },
			want:   FieldErrors{},
		},
		{
			name:   "zero price and cost accepted",
			mutate: func(d *entity.ProductDraft) { d.Price, d.Cost = "0", "0" },
			want:   FieldErrors{},
		},
		{
			name:   "negative price",
			mutate: func(d *entity.ProductDraft) { d.Price = "-1" },
			want:   FieldErrors{"price": "Price must be a positive number"},
		},
		{
			name:   "unparseable cost",
			mutate: func(d *entity.ProductDraft) { d.Cost = "abc" },
			want:   FieldErrors{"cost": "Cost must be a positive number"},
		},
		{
			name:   "blank cost",
			mutate: func(d *entity.ProductDraft) { d.Cost = " " },
			want:   FieldErrors{"cost": "Cost must be a positive number"},
		},
		{
			name:   "numeric prefix accepted",
			mutate: func(d *entity.ProductDraft) { d.Price = "12abc" },
			want:   FieldErrors{},
		},
		{
			name:   "fractional stock reads integer part",
			mutate: func(d *entity.ProductDraft) { d.Stock = "2.9" },
			want:   FieldErrors{},
		},
		{
			name:   "negative stock",
			mutate: func(d *entity.ProductDraft) { d.Stock = "-3" },
			want:   FieldErrors{"stock": "Stock must be a non-negative number"},
		},
		{
			name:   "zero minimum stock",
			mutate: func(d *entity.ProductDraft) { d.MinStock = "0" },
			want:   FieldErrors{},
		},
		{
			name:   "missing unit",
			mutate: func(d *entity.ProductDraft) { d.Unit = "" },
			want:   FieldErrors{"unit": "Unit is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := validProductDraft()
			tt.mutate(&d)
			assert.Equal(t, tt.want, ValidateProduct(d))
		})
	}
}

func TestValidateProduct_Idempotent(t *testing.T) {
	t.Parallel()

	d := validProductDraft()
	d.SKU = "X"
	d.Stock = "-1"

	assert.Equal(t, ValidateProduct(d), ValidateProduct(d))
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft entity.CredentialDraft
		want  FieldErrors
	}{
		{name: "valid", draft: entity.CredentialDraft{Email: "a@b.co", Password: "x"}, want: FieldErrors{}},
		{name: "empty", draft: entity.CredentialDraft{}, want: FieldErrors{"email": "Email is required", "password": "Password is required"}},
		{name: "bad email", draft: entity.CredentialDraft{Email: "ab.co", Password: "x"}, want: FieldErrors{"email": "Email is invalid"}},
		{name: "short password allowed", draft: entity.CredentialDraft{Email: "a@b.co", Password: "1"}, want: FieldErrors{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidateLogin(tt.draft))
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	valid := entity.RegistrationDraft{
		Name:            "Budi",
		Email:           "budi@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            entity.RoleStaff,
	}
	assert.Equal(t, FieldErrors{}, ValidateRegistration(valid))

	short := valid
	short.Password = "abc"
	short.ConfirmPassword = "abc"
	assert.Equal(t, FieldErrors{"password": "Password must be at least 6 characters"}, ValidateRegistration(short))

	empty := entity.NewRegistrationDraft()
	assert.Equal(t, FieldErrors{
		"name":     "Name must be at least 3 characters",
		"email":    "Email is required",
		"password": "Password is required",
	}, ValidateRegistration(empty))

	mismatch := valid
	mismatch.ConfirmPassword = "secret2"
	mismatch.Role = entity.Role("owner")
	assert.Equal(t, FieldErrors{
		"confirmPassword": "Passwords do not match",
		"role":            "Role must be one of staff, admin, viewer",
	}, ValidateRegistration(mismatch))
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FieldErrors{}, ValidateProfile(entity.ProfileDraft{Name: "Ani", Email: "ani@example.com"}))
	assert.Equal(t, FieldErrors{
		"name":  "Name must be at least 3 characters",
		"email": "Please enter a valid email",
	}, ValidateProfile(entity.ProfileDraft{Name: "An", Email: ""}))
}

func TestValidatePasswordChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft entity.PasswordChangeDraft
		want  FieldErrors
	}{
		{
			name:  "mismatch only",
			draft: entity.PasswordChangeDraft{CurrentPassword: "x", NewPassword: "abcdef", ConfirmPassword: "abcxyz"},
			want:  FieldErrors{"confirmPassword": "Passwords do not match"},
		},
		{
			name:  "empty new password uses length message",
			draft: entity.PasswordChangeDraft{CurrentPassword: "x"},
			want:  FieldErrors{"newPassword": "New password must be at least 6 characters"},
		},
		{
			name:  "missing current password",
			draft: entity.PasswordChangeDraft{NewPassword: "abcdef", ConfirmPassword: "abcdef"},
			want:  FieldErrors{"currentPassword": "Current password is required"},
		},
		{
			name:  "valid",
			draft: entity.PasswordChangeDraft{CurrentPassword: "x", NewPassword: "abcdef", ConfirmPassword: "abcdef"},
			want:  FieldErrors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidatePasswordChange(tt.draft))
		})
	}
}
