package inventoryapi

import (
	"encoding/json"
	"time"

	"inventory/internal/domain/entity"
)

// envelope is the body shape of every upstream response.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Stats   *paginationDTO  `json:"stats,omitempty"`

	// Some auth responses put these at the top level instead of under data.
	Token string   `json:"token,omitempty"`
	User  *userDTO `json:"user,omitempty"`
}

type paginationDTO struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

type userDTO struct {
	MongoID   string    `json:"_id"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *userDTO) toEntity() *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		ID:        firstNonEmpty(u.ID, u.MongoID),
		Name:      u.Name,
		Email:     u.Email,
		Role:      entity.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type authDTO struct {
	Token string   `json:"token"`
	User  *userDTO `json:"user"`
}

type productDTO struct {
	MongoID      string          `json:"_id"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        float64         `json:"price"`
	Cost         float64         `json:"cost"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"minStock"`
	Unit         string          `json:"unit"`
	Supplier     entity.Supplier `json:"supplier"`
	ProfitMargin *float64        `json:"profitMargin"`
	CreatedBy    json.RawMessage `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (p *productDTO) toEntity() *entity.Product {
	return &entity.Product{
		ID:           firstNonEmpty(p.ID, p.MongoID),
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		Category:     entity.Category(p.Category),
		Price:        p.Price,
		Cost:         p.Cost,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Unit:         entity.Unit(p.Unit),
		Supplier:     p.Supplier,
		ProfitMargin: p.ProfitMargin,
		CreatedBy:    creatorName(p.CreatedBy),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProducts(dtos []productDTO) []*entity.Product {
	products := make([]*entity.Product, 0, len(dtos))
	for i := range dtos {
		products = append(products, dtos[i].toEntity())
	}

	return products
}

// creatorName accepts either a plain user ID or a populated user document.
func creatorName(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}

	var user userDTO
	if err := json.Unmarshal(raw, &user); err == nil {
		return firstNonEmpty(user.Name, user.Email, user.ID, user.MongoID)
	}

	return ""
}

type categoryStatDTO struct {
	ID         string `json:"_id"`
	Count      int    `json:"count"`
	TotalStock int    `json:"totalStock"`
}

type dashboardDTO struct {
	TotalProducts      int               `json:"totalProducts"`
	RecentProducts     int               `json:"recentProducts"`
	LowStockCount      int               `json:"lowStockCount"`
	TotalStockValue    float64           `json:"totalStockValue"`
	ProductsByCategory []categoryStatDTO `json:"productsByCategory"`
}

func (d *dashboardDTO) toEntity() *entity.DashboardStats {
	stats := &entity.DashboardStats{
		TotalProducts:      d.TotalProducts,
		RecentProducts:     d.RecentProducts,
		LowStockCount:      d.LowStockCount,
		TotalStockValue:    d.TotalStockValue,
		ProductsByCategory: make([]entity.CategoryStat, 0, len(d.ProductsByCategory)),
	}
	for _, c := range d.ProductsByCategory {
		stats.ProductsByCategory = append(stats.ProductsByCategory, entity.CategoryStat{
			Category:   c.ID,
			Count:      c.Count,
			TotalStock: c.TotalStock,
		})
	}

	return stats
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
