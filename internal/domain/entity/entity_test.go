package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPagination_PageWindow(t *testing.T) {
	tests := []struct {
		name       string
		pagination Pagination
		expected   []int
	}{
		{name: "single page renders nothing", pagination: Pagination{TotalPages: 1, CurrentPage: 1}, expected: nil},
		{name: "first page", pagination: Pagination{TotalPages: 10, CurrentPage: 1}, expected: []int{1, 2, 0, 10}},
		{name: "middle page", pagination: Pagination{TotalPages: 10, CurrentPage: 5}, expected: []int{1, 0, 4, 5, 6, 0, 10}},
		{name: "last page", pagination: Pagination{TotalPages: 10, CurrentPage: 10}, expected: []int{1, 0, 9, 10}},
		{name: "no gap when neighbours touch", pagination: Pagination{TotalPages: 3, CurrentPage: 2}, expected: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pagination.PageWindow())
		})
	}
}

func TestPagination_Navigation(t *testing.T) {
	first := Pagination{TotalPages: 3, CurrentPage: 1}
	last := Pagination{TotalPages: 3, CurrentPage: 3}

	assert.False(t, first.HasPrevious())
	assert.True(t, first.HasNext())
	assert.True(t, last.HasPrevious())
	assert.False(t, last.HasNext())
}

func TestProductQuery(t *testing.T) {
	t.Run("normalize", func(t *testing.T) {
		q := ProductQuery{Sort: "-cost", Page: 0, Limit: -1}.Normalize()

		assert.Equal(t, DefaultProductQuery(), q)
	})

	t.Run("page size is capped", func(t *testing.T) {
		assert.Equal(t, MaxLimit, ProductQuery{Limit: 100000000}.Normalize().Limit)
		assert.Equal(t, MaxLimit, ProductQuery{Limit: MaxLimit}.Normalize().Limit)
		assert.Equal(t, 50, ProductQuery{Limit: 50}.Normalize().Limit)
	})

	t.Run("filter change returns to the first page", func(t *testing.T) {
		q := DefaultProductQuery().WithPage(4).WithFilters("cable", "Electronics", "price")

		assert.Equal(t, 1, q.Page)
		assert.Equal(t, "cable", q.Search)
		assert.Equal(t, "price", q.Sort)
	})

	t.Run("values omit empty filters", func(t *testing.T) {
		v := DefaultProductQuery().Values()

		assert.Equal(t, "-createdAt", v.Get("sort"))
		assert.Equal(t, "12", v.Get("limit"))
		assert.False(t, v.Has("search"))
		assert.False(t, v.Has("category"))
	})
}

func TestDraftFromProduct(t *testing.T) {
	t.Run("nil product gives the create defaults", func(t *testing.T) {
		assert.Equal(t, NewProductDraft(), DraftFromProduct(nil))
	})

	t.Run("zero numbers render empty", func(t *testing.T) {
		d := DraftFromProduct(&Product{Name: "Cable", Category: CategoryHardware, Price: 1500.5, Unit: UnitBox})

		assert.Equal(t, "1500.5", d.Price)
		assert.Empty(t, d.Cost)
		assert.Empty(t, d.Stock)
		assert.Equal(t, "10", d.MinStock)
		assert.Equal(t, "Hardware", d.Category)
		assert.Equal(t, "box", d.Unit)
	})
}

func TestProduct_IsLowStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 10, MinStock: 10}).IsLowStock())
	assert.False(t, (&Product{Stock: 11, MinStock: 10}).IsLowStock())
	assert.InDelta(t, 300.0, (&Product{Stock: 3, Cost: 100}).StockValue(), 0.001)
}

func TestStockAdjustmentType_IsValid(t *testing.T) {
	for _, typ := range []StockAdjustmentType{StockAdd, StockSubtract, StockSet} {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, StockAdjustmentType("multiply").IsValid())
	assert.False(t, Category("Toys").IsValid())
	assert.False(t, Unit("crate").IsValid())
}

func TestMenuFor(t *testing.T) {
	viewer := MenuFor(RoleViewer, "/products")
	names := make([]string, 0, len(viewer))
	for _, item := range viewer {
		names = append(names, item.Name)
		assert.Equal(t, item.Path == "/products", item.Active, item.Name)
	}

	assert.Equal(t, []string{"Dashboard", "Products", "Low Stock"}, names)
	assert.Len(t, MenuFor(RoleStaff, ""), 4)
	assert.Empty(t, MenuFor(Role("guest"), ""))
}

func TestNewLowStockReport(t *testing.T) {
	assert.Empty(t, NewLowStockReport(nil).Headline)
	assert.Equal(t, "1 Product Need Restocking", NewLowStockReport([]*Product{{}}).Headline)
	assert.Equal(t, "3 Products Need Restocking", NewLowStockReport([]*Product{{}, {}, {}}).Headline)
}

func TestLowStockAlert_Shortfall(t *testing.T) {
	assert.Equal(t, 8, (&LowStockAlert{Stock: 3, MinStock: 10}).Shortfall())
	assert.Equal(t, 1, (&LowStockAlert{Stock: 10, MinStock: 10}).Shortfall())
	assert.Equal(t, 0, (&LowStockAlert{Stock: 20, MinStock: 10}).Shortfall())
}

func TestSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &Session{ID: uuid.New(), User: User{Role: RoleStaff}, ExpiresAt: now}

	assert.True(t, s.IsExpired(now))
	assert.False(t, s.IsExpired(now.Add(-time.Second)))
	assert.Equal(t, RoleStaff, s.Role())
	assert.Equal(t, Role(""), (*Session)(nil).Role())
	assert.True(t, s.Info(s.ID).Current)
	assert.False(t, s.Info(uuid.New()).Current)
}
