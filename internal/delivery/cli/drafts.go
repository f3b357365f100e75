package cli

import (
	"os"

	"inventory/internal/delivery/api/validator"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/validation"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// draftFile is the YAML layout of a bulk import:
//
//	products:
//	  - id: 665f1c2e9b1e8a0012345678   # optional, required for labels
//	    name: USB Cable
//	    sku: ELC-001
//	    price: 25000
//	    ...
type draftFile struct {
	Products []draftEntry `yaml:"products"`
}

type draftEntry struct {
	ID                  string `yaml:"id"`
	entity.ProductDraft `yaml:",inline"`
}

// enumFields holds the fields whose membership the console checks while binding the request.
type enumFields struct {
	Category string `json:"category" validate:"omitempty,category"`
	Unit     string `json:"unit" validate:"omitempty,unit"`
}

func loadDrafts(path string) ([]draftEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var file draftFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if len(file.Products) == 0 {
		return nil, errors.Errorf("%s has no products", path)
	}

	return file.Products, nil
}

// checkDraft applies the same rules as the console: enumeration membership first, then the product form.
func checkDraft(v *validator.CustomValidator, d entity.ProductDraft) validation.FieldErrors {
	errs := validation.FieldErrors{}

	err := v.Validate(&enumFields{Category: d.Category, Unit: d.Unit})
	var fieldErr *domainerrors.FieldValidationError
	if errors.As(err, &fieldErr) {
		errs = errs.Merge(fieldErr.Fields())
	}

	return errs.Merge(validation.ValidateProduct(d))
}
