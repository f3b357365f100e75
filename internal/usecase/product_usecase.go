package usecase

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/validation"
)

// ProductUsecase defines the product views and product writes of the console.
type ProductUsecase interface {
	List(ctx context.Context, session *entity.Session, query entity.ProductQuery) (*entity.ProductPage, error)
	Get(ctx context.Context, session *entity.Session, id string) (*entity.Product, error)
	Create(ctx context.Context, session *entity.Session, draft entity.ProductDraft) (*entity.Product, error)
	Update(ctx context.Context, session *entity.Session, id string, draft entity.ProductDraft) (*entity.Product, error)
	Delete(ctx context.Context, session *entity.Session, id string) error
	LowStock(ctx context.Context, session *entity.Session) (*entity.LowStockReport, error)
	ByCategory(ctx context.Context, session *entity.Session, category entity.Category) ([]*entity.Product, error)
	AdjustStock(ctx context.Context, session *entity.Session, id string, adjustment entity.StockAdjustment) (*entity.Product, error)
	// Preview computes the live profit figures of the product form.
	Preview(price, cost string) validation.ProfitPreview
	// Label renders the QR label of a product as PNG.
	Label(ctx context.Context, session *entity.Session, id string) ([]byte, error)
}
