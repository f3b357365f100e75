package entity

import (
	"slices"
	"strconv"
	"time"
)

// Category is one of the fixed product categories.
type Category string

const (
	CategoryElectronics  Category = "Electronics"
	CategoryClothing     Category = "Clothing"
	CategoryFoodBeverage Category = "Food & Beverage"
	CategoryFurniture    Category = "Furniture"
	CategoryStationery   Category = "Stationery"
	CategoryHardware     Category = "Hardware"
	CategoryOther        Category = "Other"
)

// Defaults of a new product draft.
const (
	DefaultCategory       = CategoryElectronics
	DefaultUnit           = UnitPcs
	DefaultMinStock       = 10
	defaultMinStockString = "10"
)

// Categories returns the categories in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFoodBeverage,
		CategoryFurniture,
		CategoryStationery,
		CategoryHardware,
		CategoryOther,
	}
}

// IsValid checks if the category is one of the known categories.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// Unit is the unit of measure a product is stocked in.
type Unit string

const (
	UnitPcs   Unit = "pcs"
	UnitBox   Unit = "box"
	UnitKg    Unit = "kg"
	UnitLiter Unit = "liter"
	UnitMeter Unit = "meter"
	UnitSet   Unit = "set"
)

// Units returns the units in display order.
func Units() []Unit {
	return []Unit{UnitPcs, UnitBox, UnitKg, UnitLiter, UnitMeter, UnitSet}
}

// IsValid checks if the unit is one of the known units.
func (u Unit) IsValid() bool {
	return slices.Contains(Units(), u)
}

// Supplier holds optional supplier information.
type Supplier struct {
	Name    string `json:"name" yaml:"name"`
	Contact string `json:"contact" yaml:"contact"`
}

// Product is a product as returned by the upstream inventory API.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Description  string    `json:"description"`
	Category     Category  `json:"category"`
	Price        float64   `json:"price"`
	Cost         float64   `json:"cost"`
	Stock        int       `json:"stock"`
	MinStock     int       `json:"minStock"`
	Unit         Unit      `json:"unit"`
	Supplier     Supplier  `json:"supplier"`
	ProfitMargin *float64  `json:"profitMargin,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// IsLowStock reports whether stock is at or below the minimum stock threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockValue is the cost value of the units on hand.
func (p *Product) StockValue() float64 {
	return p.Cost * float64(p.Stock)
}

// ProductDraft is the product form. Numeric fields hold raw text exactly as typed.
type ProductDraft struct {
	Name        string   `json:"name" yaml:"name"`
	SKU         string   `json:"sku" yaml:"sku"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Price       string   `json:"price" yaml:"price"`
	Cost        string   `json:"cost" yaml:"cost"`
	Stock       string   `json:"stock" yaml:"stock"`
	MinStock    string   `json:"minStock" yaml:"minStock"`
	Unit        string   `json:"unit" yaml:"unit"`
	Supplier    Supplier `json:"supplier" yaml:"supplier"`
}

// NewProductDraft returns an empty draft for the create flow.
func NewProductDraft() ProductDraft {
	return ProductDraft{
		Category: string(DefaultCategory),
		MinStock: defaultMinStockString,
		Unit:     string(DefaultUnit),
	}
}

// DraftFromProduct pre-populates a draft for the edit flow.
// Zero numeric values render as empty text and a zero minimum stock falls back to the default.
func DraftFromProduct(p *Product) ProductDraft {
	d := NewProductDraft()
	if p == nil {
		return d
	}

	d.Name = p.Name
	d.SKU = p.SKU
	d.Description = p.Description
	if p.Category != "" {
		d.Category = string(p.Category)
	}
	if p.Unit != "" {
		d.Unit = string(p.Unit)
	}
	if p.Price != 0 {
		d.Price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	if p.Cost != 0 {
		d.Cost = strconv.FormatFloat(p.Cost, 'f', -1, 64)
	}
	if p.Stock != 0 {
		d.Stock = strconv.Itoa(p.Stock)
	}
	if p.MinStock != 0 {
		d.MinStock = strconv.Itoa(p.MinStock)
	}
	d.Supplier = p.Supplier

	return d
}

// ProductInput is a validated draft converted to numeric types, ready for transmission.
type ProductInput struct {
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Cost        float64  `json:"cost"`
	Stock       int      `json:"stock"`
	MinStock    int      `json:"minStock"`
	Unit        Unit     `json:"unit"`
	Supplier    Supplier `json:"supplier"`
}

// StockAdjustmentType is how a stock adjustment is applied upstream.
type StockAdjustmentType string

const (
	StockAdd      StockAdjustmentType = "add"
	StockSubtract StockAdjustmentType = "subtract"
	StockSet      StockAdjustmentType = "set"
)

// IsValid checks if the adjustment type is add, subtract or set.
func (t StockAdjustmentType) IsValid() bool {
	return t == StockAdd || t == StockSubtract || t == StockSet
}

// StockAdjustment is the body of a stock update.
type StockAdjustment struct {
	Quantity int                 `json:"quantity"`
	Type     StockAdjustmentType `json:"type"`
	Reason   string              `json:"reason,omitempty"`
}
