package impl

import (
	"context"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	mockSvc "inventory/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Overview(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(entity.RoleViewer)

	t.Run("stats and recent products", func(t *testing.T) {
		api := mockSvc.NewMockInventoryAPI(t)
		srv := NewDashboardService(api, newDiscardLogger())

		stats := &entity.DashboardStats{
			TotalProducts:   42,
			LowStockCount:   3,
			TotalStockValue: 150000,
			ProductsByCategory: []entity.CategoryStat{
				{Category: "Electronics", Count: 30},
				{Category: "Other", Count: 12},
			},
		}
		api.EXPECT().DashboardStats(ctx, "upstream-token").Return(stats, nil)
		api.EXPECT().ListProducts(ctx, "upstream-token", entity.ProductQuery{Sort: "-createdAt", Page: 1, Limit: 5}).
			Return(&service.ProductList{Products: []*entity.Product{{ID: "1"}, {ID: "2"}}}, nil)

		overview, err := srv.Overview(ctx, session)

		require.NoError(t, err)
		assert.Equal(t, stats, overview.Stats)
		assert.Len(t, overview.RecentProducts, 2)
		assert.Equal(t, "Rp 150.000", overview.TotalStockValue)
		assert.Equal(t, 2, overview.CategoryCount)
	})

	t.Run("upstream failure", func(t *testing.T) {
		api := mockSvc.NewMockInventoryAPI(t)
		srv := NewDashboardService(api, newDiscardLogger())
		api.EXPECT().DashboardStats(ctx, "upstream-token").Return(nil, domainerrors.ErrUpstreamUnavailable)

		_, err := srv.Overview(ctx, session)

		assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	})
}
