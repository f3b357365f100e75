package validation

import (
	"inventory/internal/domain/entity"
)

const (
	msgEmailInvalid     = "Email is invalid"
	msgPasswordMismatch = "Passwords do not match"
	msgPriceInvalid     = "Price must be a positive number"
	msgCostInvalid      = "Cost must be a positive number"
)

var productSchema = Schema{
	{Field: "name", Rules: []Rule{MinLength("Product name", 3).Trimmed()}},
	{Field: "sku", Rules: []Rule{MinLength("SKU", 3).Trimmed()}},
	{Field: "category", Rules: []Rule{Required("Category")}},
	{Field: "price", Rules: []Rule{NonNegativeNumber("Price").WithMessage(msgPriceInvalid)}},
	{Field: "cost", Rules: []Rule{NonNegativeNumber("Cost").WithMessage(msgCostInvalid)}},
	{Field: "stock", Rules: []Rule{NonNegativeInteger("Stock")}},
	{Field: "minStock", Rules: []Rule{NonNegativeInteger("Minimum stock")}},
	{Field: "unit", Rules: []Rule{Required("Unit")}},
}

var loginSchema = Schema{
	{Field: "email", Rules: []Rule{Required("Email"), LooseEmail("Email").WithMessage(msgEmailInvalid)}},
	{Field: "password", Rules: []Rule{Required("Password")}},
}

var registrationSchema = Schema{
	{Field: "name", Rules: []Rule{MinLength("Name", 3).Trimmed()}},
	{Field: "email", Rules: []Rule{Required("Email"), LooseEmail("Email").WithMessage(msgEmailInvalid)}},
	{Field: "password", Rules: []Rule{Required("Password"), MinLength("Password", minPasswordLength)}},
	{Field: "confirmPassword", Rules: []Rule{Match("Passwords", "password")}},
	{Field: "role", Rules: []Rule{
		Custom("Role must be one of staff, admin, viewer", func(v string, _ Values) bool {
			return entity.Role(v).IsValid()
		}),
	}},
}

var profileSchema = Schema{
	{Field: "name", Rules: []Rule{MinLength("Name", 3).Trimmed()}},
	{Field: "email", Rules: []Rule{LooseEmail("Email").WithMessage("Please enter a valid email")}},
}

var passwordChangeSchema = Schema{
	{Field: "currentPassword", Rules: []Rule{Required("Current password")}},
	{Field: "newPassword", Rules: []Rule{MinLength("New password", minPasswordLength)}},
	{Field: "confirmPassword", Rules: []Rule{Match("Passwords", "newPassword")}},
}

// ValidateProduct checks all eight required product fields. Description and supplier are free text.
func ValidateProduct(d entity.ProductDraft) FieldErrors {
	return productSchema.Validate(Values{
		"name":     d.Name,
		"sku":      d.SKU,
		"category": d.Category,
		"price":    d.Price,
		"cost":     d.Cost,
		"stock":    d.Stock,
		"minStock": d.MinStock,
		"unit":     d.Unit,
	})
}

// ValidateLogin only requires a password; length is not enforced at login.
func ValidateLogin(d entity.CredentialDraft) FieldErrors {
	return loginSchema.Validate(Values{
		"email":    d.Email,
		"password": d.Password,
	})
}

// ValidateRegistration checks the sign-up form, including that the confirmation matches.
func ValidateRegistration(d entity.RegistrationDraft) FieldErrors {
	return registrationSchema.Validate(Values{
		"name":            d.Name,
		"email":           d.Email,
		"password":        d.Password,
		"confirmPassword": d.ConfirmPassword,
		"role":            string(d.Role),
	})
}

// ValidateProfile checks the profile form; the email pattern is the loose one with its own message.
func ValidateProfile(d entity.ProfileDraft) FieldErrors {
	return profileSchema.Validate(Values{
		"name":  d.Name,
		"email": d.Email,
	})
}

// ValidatePasswordChange checks the password tab against the new password, not the current one.
func ValidatePasswordChange(d entity.PasswordChangeDraft) FieldErrors {
	return passwordChangeSchema.Validate(Values{
		"currentPassword": d.CurrentPassword,
		"newPassword":     d.NewPassword,
		"confirmPassword": d.ConfirmPassword,
	})
}
