package validation

import (
	"inventory/internal/domain/entity"
)

// ToProductInput validates the draft and converts its numeric text. The error is a FieldErrors.
func ToProductInput(d entity.ProductDraft) (entity.ProductInput, error) {
	if errs := ValidateProduct(d); !errs.Valid() {
		return entity.ProductInput{}, errs
	}

	// ValidateProduct already proved these parse, but "Infinity" and "1e999" parse to +Inf,
	// which cannot be sent upstream.
	price, _ := ParseFloatPrefix(d.Price)
	cost, _ := ParseFloatPrefix(d.Cost)
	if errs := nonFinite(price, cost); !errs.Valid() {
		return entity.ProductInput{}, errs
	}
	stock, _ := ParseIntPrefix(d.Stock)
	minStock, _ := ParseIntPrefix(d.MinStock)

	return entity.ProductInput{
		Name:        d.Name,
		SKU:         d.SKU,
		Description: d.Description,
		Category:    entity.Category(d.Category),
		Price:       price,
		Cost:        cost,
		Stock:       stock,
		MinStock:    minStock,
		Unit:        entity.Unit(d.Unit),
		Supplier:    d.Supplier,
	}, nil
}

func nonFinite(price, cost float64) FieldErrors {
	errs := FieldErrors{}
	if !isFinite(price) {
		errs["price"] = msgPriceInvalid
	}
	if !isFinite(cost) {
		errs["cost"] = msgCostInvalid
	}

	return errs
}
