package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/validation"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product list, detail, form and label endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// SupplierRequest is the supplier section of the product form.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// ProductRequest is the product form as posted by the renderer.
type ProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"omitempty,category"`
	Price       FormText        `json:"price"`
	Cost        FormText        `json:"cost"`
	Stock       FormText        `json:"stock"`
	MinStock    FormText        `json:"minStock"`
	Unit        string          `json:"unit" validate:"omitempty,unit"`
	Supplier    SupplierRequest `json:"supplier"`
}

func (r ProductRequest) draft() entity.ProductDraft {
	return entity.ProductDraft{
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		Category:    r.Category,
		Price:       string(r.Price),
		Cost:        string(r.Cost),
		Stock:       string(r.Stock),
		MinStock:    string(r.MinStock),
		Unit:        r.Unit,
		Supplier:    entity.Supplier{Name: r.Supplier.Name, Contact: r.Supplier.Contact},
	}
}

// checkProductForm reports the enumeration failures together with every product form message,
// so a bad category does not hide a short name.
func checkProductForm(c echo.Context, req *ProductRequest) error {
	err := c.Validate(req)
	var fieldErr *domainerrors.FieldValidationError
	if !errors.As(err, &fieldErr) {
		return err
	}

	errs := validation.FieldErrors{}.Merge(fieldErr.Fields()).Merge(validation.ValidateProduct(req.draft()))

	return domainerrors.NewFieldValidationError(errs)
}

// StockRequest is the stock adjustment form.
type StockRequest struct {
	Quantity int    `json:"quantity" validate:"gte=0"`
	Type     string `json:"type" validate:"required,adjustment"`
	Reason   string `json:"reason" validate:"max=200"`
}

// PreviewRequest carries the price and cost fields of the product form.
type PreviewRequest struct {
	Price FormText `json:"price"`
	Cost  FormText `json:"cost"`
}

// ProductPageResponse is one page of the product list plus the paging controls.
type ProductPageResponse struct {
	*entity.ProductPage
	Query       entity.ProductQuery `json:"query"`
	HasPrevious bool                `json:"hasPrevious"`
	HasNext     bool                `json:"hasNext"`
}

// List returns a filtered, sorted page of products.
func (h *ProductHandler) List(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	query := entity.DefaultProductQuery()
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid product query")
	}
	query = query.Normalize()

	page, err := h.productUC.List(c.Request().Context(), session, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProductPageResponse{
		ProductPage: page,
		Query:       query,
		HasPrevious: page.Pagination.HasPrevious(),
		HasNext:     page.Pagination.HasNext(),
	})
}

// Get returns a single product.
func (h *ProductHandler) Get(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	product, err := h.productUC.Get(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Create handles the create form.
func (h *ProductHandler) Create(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := checkProductForm(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), session, req.draft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// Update handles the edit form.
func (h *ProductHandler) Update(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := checkProductForm(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), session, c.Param("id"), req.draft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	if err := h.productUC.Delete(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// LowStock returns the products at or below their minimum stock.
func (h *ProductHandler) LowStock(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	report, err := h.productUC.LowStock(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// ByCategory lists the products of one category.
func (h *ProductHandler) ByCategory(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	products, err := h.productUC.ByCategory(c.Request().Context(), session, entity.Category(c.Param("category")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// AdjustStock applies a stock adjustment.
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock adjustment")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.AdjustStock(c.Request().Context(), session, c.Param("id"), entity.StockAdjustment{
		Quantity: req.Quantity,
		Type:     entity.StockAdjustmentType(req.Type),
		Reason:   req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Preview returns the live profit figures for the product form.
func (h *ProductHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}

	return response.Success(c, http.StatusOK, h.productUC.Preview(string(req.Price), string(req.Cost)))
}

// Label renders the QR label of a product.
func (h *ProductHandler) Label(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	png, err := h.productUC.Label(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
