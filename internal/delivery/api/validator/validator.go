// Package validator adapts go-playground/validator to echo and renders failures per field.
package validator

import (
	"reflect"
	"strings"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds the validator with the inventory enumeration tags registered.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		}

		return name
	})

	mustRegister(v, "category", func(fl playground.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	mustRegister(v, "unit", func(fl playground.FieldLevel) bool {
		return entity.Unit(fl.Field().String()).IsValid()
	})
	mustRegister(v, "role", func(fl playground.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	mustRegister(v, "adjustment", func(fl playground.FieldLevel) bool {
		return entity.StockAdjustmentType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate runs the struct tags. Failures come back as a field validation error.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		field := fieldPath(fe)
		if _, exists := fields[field]; !exists {
			fields[field] = message(fe)
		}
	}

	return domainerrors.NewFieldValidationError(fields)
}

// fieldPath drops the root struct name, e.g. "ProductRequest.supplier.name" becomes "supplier.name".
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}

	return fe.Field()
}

func message(fe playground.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "category":
		return "Category must be one of " + joinValues(entity.Categories())
	case "unit":
		return "Unit must be one of " + joinValues(entity.Units())
	case "role":
		return "Role must be one of staff, admin, viewer"
	case "adjustment":
		return "Adjustment type must be one of add, subtract, set"
	case "max":
		return label + " cannot exceed " + fe.Param() + " characters"
	case "min", "gte":
		return label + " must be at least " + fe.Param()
	case "uuid":
		return label + " must be a valid id"
	default:
		return "Invalid input"
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return strings.Join(parts, ", ")
}
