package entity

import "fmt"

// CategoryStat is one bar of the products-by-category chart.
type CategoryStat struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	TotalStock int    `json:"totalStock"`
}

// DashboardStats are the aggregate figures computed upstream.
type DashboardStats struct {
	TotalProducts      int            `json:"totalProducts"`
	RecentProducts     int            `json:"recentProducts"`
	LowStockCount      int            `json:"lowStockCount"`
	TotalStockValue    float64        `json:"totalStockValue"`
	ProductsByCategory []CategoryStat `json:"productsByCategory"`
}

// CategoryCount is the number of categories holding at least one product.
func (s *DashboardStats) CategoryCount() int {
	if s == nil {
		return 0
	}

	return len(s.ProductsByCategory)
}

// LowStockReport is the data behind the low-stock page.
type LowStockReport struct {
	Products []*Product `json:"products"`
	Headline string     `json:"headline,omitempty"`
}

// NewLowStockReport builds the report and its banner headline.
func NewLowStockReport(products []*Product) *LowStockReport {
	report := &LowStockReport{Products: products}
	switch n := len(products); {
	case n == 1:
		report.Headline = "1 Product Need Restocking"
	case n > 1:
		report.Headline = fmt.Sprintf("%d Products Need Restocking", n)
	}

	return report
}
