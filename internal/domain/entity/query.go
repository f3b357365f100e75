package entity

import (
	"net/url"
	"slices"
	"strconv"
)

const (
	DefaultSort  = "-createdAt"
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
	RecentLimit  = 5
)

// SortKeys lists the sort options offered by the product filter.
func SortKeys() []string {
	return []string{"name", "-name", "price", "-price", "stock", "-stock", "-createdAt"}
}

// ProductQuery is the list view's filter, sort and pagination state.
type ProductQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// DefaultProductQuery is the state the list view starts in and resets to.
func DefaultProductQuery() ProductQuery {
	return ProductQuery{Sort: DefaultSort, Page: DefaultPage, Limit: DefaultLimit}
}

// Normalize fills defaults, drops unknown sort keys and caps the page size at MaxLimit.
func (q ProductQuery) Normalize() ProductQuery {
	if q.Sort != "" && !slices.Contains(SortKeys(), q.Sort) {
		q.Sort = DefaultSort
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	switch {
	case q.Limit < 1:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}

	return q
}

// WithFilters applies a filter change. Any filter change returns to the first page.
func (q ProductQuery) WithFilters(search, category, sort string) ProductQuery {
	q.Search = search
	q.Category = category
	q.Sort = sort
	q.Page = DefaultPage

	return q
}

// WithPage moves to another page keeping the filters.
func (q ProductQuery) WithPage(page int) ProductQuery {
	q.Page = page

	return q.Normalize()
}

// Values encodes the query for the upstream API, omitting empty filters.
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}

	return v
}

// Pagination is the paging summary returned alongside a product list.
type Pagination struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// PageWindow returns the page buttons to render: the first and last page, the current page and
// its neighbours. A zero entry marks a gap. Nothing is rendered for a single page.
func (p Pagination) PageWindow() []int {
	if p.TotalPages <= 1 {
		return nil
	}

	var pages []int
	for page := 1; page <= p.TotalPages; page++ {
		visible := page == 1 || page == p.TotalPages ||
			(page >= p.CurrentPage-1 && page <= p.CurrentPage+1)
		if visible {
			pages = append(pages, page)

			continue
		}
		if len(pages) > 0 && pages[len(pages)-1] != 0 {
			pages = append(pages, 0)
		}
	}

	return pages
}

// HasPrevious reports whether a previous page exists.
func (p Pagination) HasPrevious() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// ProductPage is one page of the product list.
type ProductPage struct {
	Products   []*Product `json:"products"`
	Pagination Pagination `json:"pagination"`
	PageWindow []int      `json:"pageWindow,omitempty"`
}
