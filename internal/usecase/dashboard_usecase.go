package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// DashboardOverview is the data behind the dashboard page.
type DashboardOverview struct {
	Stats           *entity.DashboardStats `json:"stats"`
	RecentProducts  []*entity.Product      `json:"recentProducts"`
	TotalStockValue string                 `json:"totalStockValue"`
	CategoryCount   int                    `json:"categoryCount"`
}

// DashboardUsecase builds the dashboard.
type DashboardUsecase interface {
	Overview(ctx context.Context, session *entity.Session) (*DashboardOverview, error)
}
