package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/domain/validation"
	"inventory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	api       service.InventoryAPI
	labels    service.LabelService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	API       service.InventoryAPI
	Labels    service.LabelService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		api:       params.API,
		labels:    params.Labels,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, session *entity.Session, query entity.ProductQuery) (*entity.ProductPage, error) {
	list, err := srv.api.ListProducts(ctx, session.UpstreamToken, query.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &entity.ProductPage{
		Products:   list.Products,
		Pagination: list.Pagination,
		PageWindow: list.Pagination.PageWindow(),
	}, nil
}

func (srv *productService) Get(ctx context.Context, session *entity.Session, id string) (*entity.Product, error) {
	product, err := srv.api.GetProduct(ctx, session.UpstreamToken, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// Create validates the draft, converts it and creates the product upstream.
func (srv *productService) Create(ctx context.Context, session *entity.Session, draft entity.ProductDraft) (*entity.Product, error) {
	if err := requireWriteRole(session); err != nil {
		return nil, err
	}

	input, err := validation.ToProductInput(draft)
	if err != nil {
		return nil, asFieldValidationError(err)
	}

	product, err := srv.api.CreateProduct(ctx, session.UpstreamToken, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID), slog.String("sku", product.SKU))
	srv.notifyLowStock(ctx, session, product)

	return product, nil
}

// Update validates the draft, converts it and replaces the product upstream.
func (srv *productService) Update(ctx context.Context, session *entity.Session, id string, draft entity.ProductDraft) (*entity.Product, error) {
	if err := requireWriteRole(session); err != nil {
		return nil, err
	}

	input, err := validation.ToProductInput(draft)
	if err != nil {
		return nil, asFieldValidationError(err)
	}

	product, err := srv.api.UpdateProduct(ctx, session.UpstreamToken, id, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("productID", product.ID))
	srv.notifyLowStock(ctx, session, product)

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, session *entity.Session, id string) error {
	if !session.Role().CanDeleteProducts() {
		return domainerrors.ErrForbidden.WrapMessage("only admins can delete products")
	}

	if err := srv.api.DeleteProduct(ctx, session.UpstreamToken, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id))

	return nil
}

func (srv *productService) LowStock(ctx context.Context, session *entity.Session) (*entity.LowStockReport, error) {
	products, err := srv.api.LowStockProducts(ctx, session.UpstreamToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock products")
	}

	return entity.NewLowStockReport(products), nil
}

func (srv *productService) ByCategory(ctx context.Context, session *entity.Session, category entity.Category) ([]*entity.Product, error) {
	if !category.IsValid() {
		return nil, domainerrors.ErrNotFound.WrapMessage("unknown category")
	}

	products, err := srv.api.ProductsByCategory(ctx, session.UpstreamToken, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// AdjustStock applies an add, subtract or set to the stock of a product.
func (srv *productService) AdjustStock(ctx context.Context, session *entity.Session, id string, adjustment entity.StockAdjustment) (*entity.Product, error) {
	if err := requireWriteRole(session); err != nil {
		return nil, err
	}

	errs := validation.FieldErrors{}
	if adjustment.Quantity < 0 {
		errs["quantity"] = validation.GetValidationMessage("Quantity", validation.KindNonNegative, nil)
	}
	if !adjustment.Type.IsValid() {
		errs["type"] = "Adjustment type must be one of add, subtract, set"
	}
	if !errs.Valid() {
		return nil, domainerrors.NewFieldValidationError(errs)
	}

	product, err := srv.api.UpdateStock(ctx, session.UpstreamToken, id, adjustment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust stock")
	}

	srv.log(ctx).Info("Stock adjusted",
		slog.String("productID", id),
		slog.String("type", string(adjustment.Type)),
		slog.Int("quantity", adjustment.Quantity),
		slog.Int("stock", product.Stock),
	)
	srv.notifyLowStock(ctx, session, product)

	return product, nil
}

func (srv *productService) Preview(price, cost string) validation.ProfitPreview {
	return validation.CalculateProfit(price, cost).Preview()
}

func (srv *productService) Label(ctx context.Context, session *entity.Session, id string) ([]byte, error) {
	product, err := srv.api.GetProduct(ctx, session.UpstreamToken, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	png, err := srv.labels.GenerateProductLabel(product)
	if err != nil {
		return nil, domainerrors.ErrLabelGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}

// notifyLowStock publishes a restocking alert. Publishing never fails the write that triggered it.
func (srv *productService) notifyLowStock(ctx context.Context, session *entity.Session, product *entity.Product) {
	if product == nil || !product.IsLowStock() {
		return
	}

	event := &service.LowStockAlertEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ProductID:   product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Stock:       product.Stock,
		MinStock:    product.MinStock,
		Unit:        string(product.Unit),
		TriggeredBy: session.User.ID,
		OccurredAt:  srv.now(),
	}

	if err := srv.publisher.PublishLowStockAlert(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish low stock alert", slog.String("productID", product.ID), slog.Any("error", err))
	}
}

func requireWriteRole(session *entity.Session) error {
	if !session.Role().CanWriteProducts() {
		return domainerrors.ErrForbidden.WrapMessage("role cannot modify products")
	}

	return nil
}

// asFieldValidationError turns validator output into the 400 rendered with per-field details.
func asFieldValidationError(err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return domainerrors.NewFieldValidationError(fieldErrs)
	}

	return err
}
