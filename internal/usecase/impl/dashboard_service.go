package impl

import (
	"context"
	"log/slog"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"
	"inventory/internal/domain/validation"
	"inventory/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	api    service.InventoryAPI
	logger *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(api service.InventoryAPI, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{api: api, logger: logger}
}

// Overview combines the upstream statistics with the most recently created products.
func (srv *dashboardService) Overview(ctx context.Context, session *entity.Session) (*usecase.DashboardOverview, error) {
	stats, err := srv.api.DashboardStats(ctx, session.UpstreamToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard stats")
	}

	recent, err := srv.api.ListProducts(ctx, session.UpstreamToken, entity.ProductQuery{
		Sort:  entity.DefaultSort,
		Page:  entity.DefaultPage,
		Limit: entity.RecentLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent products")
	}

	products := recent.Products
	if len(products) > entity.RecentLimit {
		products = products[:entity.RecentLimit]
	}

	return &usecase.DashboardOverview{
		Stats:           stats,
		RecentProducts:  products,
		TotalStockValue: validation.FormatCurrency(stats.TotalStockValue),
		CategoryCount:   stats.CategoryCount(),
	}, nil
}
