package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	errs := FieldErrors{"sku": "SKU must be at least 3 characters", "name": "Product name must be at least 3 characters"}
	assert.False(t, errs.Valid())
	assert.Equal(t, []string{"name", "sku"}, errs.Fields())
	assert.Equal(t,
		"validation failed: name: Product name must be at least 3 characters; sku: SKU must be at least 3 characters",
		errs.Error())

	errs.Clear("name")
	errs.Clear("missing")
	assert.Equal(t, []string{"sku"}, errs.Fields())

	merged := errs.Merge(FieldErrors{"sku": "taken", "unit": "Unit is required"})
	assert.Equal(t, FieldErrors{"sku": "taken", "unit": "Unit is required"}, merged)

	var empty FieldErrors
	assert.True(t, empty.Valid())
	assert.Equal(t, FieldErrors{"a": "b"}, empty.Merge(FieldErrors{"a": "b"}))
}

func TestFieldErrors_AsError(t *testing.T) {
	t.Parallel()

	var err error = FieldErrors{"email": "Email is required"}

	var target FieldErrors
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Email is required", target["email"])
}
