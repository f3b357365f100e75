package validation

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// ProfitMetrics is the live profit preview of a product draft.
// Computable is false until both price and cost hold a number. MarginDefined is false when cost is zero.
type ProfitMetrics struct {
	Computable    bool
	MarginDefined bool
	ProfitMargin  decimal.Decimal
	ProfitPerUnit decimal.Decimal
}

// ProfitPreview is what the form renders next to the price and cost inputs.
type ProfitPreview struct {
	Computable    bool   `json:"computable"`
	MarginDefined bool   `json:"marginDefined"`
	ProfitMargin  string `json:"profitMargin,omitempty"`
	ProfitPerUnit string `json:"profitPerUnit,omitempty"`
}

// CalculateProfit reads price and cost from raw form text.
func CalculateProfit(price, cost string) ProfitMetrics {
	if price == "" || cost == "" {
		return ProfitMetrics{}
	}

	p, okPrice := ParseFloatPrefix(price)
	c, okCost := ParseFloatPrefix(cost)
	if !okPrice || !okCost {
		return ProfitMetrics{}
	}

	return ProfitFor(p, c)
}

// ProfitFor computes the metrics of already-parsed values. Non-finite inputs are not computable.
func ProfitFor(price, cost float64) ProfitMetrics {
	if !isFinite(price) || !isFinite(cost) {
		return ProfitMetrics{}
	}

	p := decimal.NewFromFloat(price)
	c := decimal.NewFromFloat(cost)
	m := ProfitMetrics{
		Computable:    true,
		ProfitPerUnit: p.Sub(c),
	}
	if !c.IsZero() {
		m.MarginDefined = true
		m.ProfitMargin = m.ProfitPerUnit.Div(c).Mul(hundred)
	}

	return m
}

// FormatMargin renders the margin with two decimals, e.g. "50.00". Empty when undefined.
func (m ProfitMetrics) FormatMargin() string {
	if !m.Computable || !m.MarginDefined {
		return ""
	}

	return m.ProfitMargin.StringFixed(2)
}

// FormatProfitPerUnit renders the profit with Indonesian grouping, e.g. "1.234,5".
func (m ProfitMetrics) FormatProfitPerUnit() string {
	if !m.Computable {
		return ""
	}

	return formatLocale(m.ProfitPerUnit.InexactFloat64(), 3)
}

// Preview formats the metrics for display. Margin is undefined unless both inputs were usable.
func (m ProfitMetrics) Preview() ProfitPreview {
	return ProfitPreview{
		Computable:    m.Computable,
		MarginDefined: m.Computable && m.MarginDefined,
		ProfitMargin:  m.FormatMargin(),
		ProfitPerUnit: m.FormatProfitPerUnit(),
	}
}

// FormatCurrency renders an amount in rupiah, e.g. "Rp 150.000".
func FormatCurrency(amount float64) string {
	if !isFinite(amount) {
		return ""
	}

	return "Rp " + formatLocale(amount, 2)
}

func formatLocale(v float64, maxFraction int) string {
	p := message.NewPrinter(language.Indonesian)

	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFraction)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
