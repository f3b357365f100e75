package inventoryapi

import (
	"context"
	"net/http"
	"net/url"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"
)

func (c *Client) ListProducts(ctx context.Context, token string, query entity.ProductQuery) (*service.ProductList, error) {
	env, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/products",
		token:    token,
		query:    query.Values(),
		resource: resourceProduct,
	})
	if err != nil {
		return nil, err
	}

	var dtos []productDTO
	if err := decodeData(env, &dtos); err != nil {
		return nil, err
	}

	list := &service.ProductList{Products: toProducts(dtos)}
	if env.Stats != nil {
		list.Pagination = entity.Pagination{
			Total:       env.Stats.Total,
			TotalPages:  env.Stats.TotalPages,
			CurrentPage: env.Stats.CurrentPage,
		}
	}

	return list, nil
}

func (c *Client) GetProduct(ctx context.Context, token, id string) (*entity.Product, error) {
	return c.productCall(ctx, call{method: http.MethodGet, path: productPath(id), token: token})
}

func (c *Client) CreateProduct(ctx context.Context, token string, input entity.ProductInput) (*entity.Product, error) {
	return c.productCall(ctx, call{method: http.MethodPost, path: "/products", token: token, body: input})
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, input entity.ProductInput) (*entity.Product, error) {
	return c.productCall(ctx, call{method: http.MethodPut, path: productPath(id), token: token, body: input})
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, call{method: http.MethodDelete, path: productPath(id), token: token, resource: resourceProduct})

	return err
}

func (c *Client) LowStockProducts(ctx context.Context, token string) ([]*entity.Product, error) {
	return c.productsCall(ctx, call{method: http.MethodGet, path: "/products/low-stock", token: token})
}

func (c *Client) ProductsByCategory(ctx context.Context, token string, category entity.Category) ([]*entity.Product, error) {
	return c.productsCall(ctx, call{
		method: http.MethodGet,
		path:   "/products/category/" + url.PathEscape(string(category)),
		token:  token,
	})
}

func (c *Client) UpdateStock(ctx context.Context, token, id string, adjustment entity.StockAdjustment) (*entity.Product, error) {
	return c.productCall(ctx, call{method: http.MethodPatch, path: productPath(id) + "/stock", token: token, body: adjustment})
}

func (c *Client) DashboardStats(ctx context.Context, token string) (*entity.DashboardStats, error) {
	env, err := c.do(ctx, call{method: http.MethodGet, path: "/products/stats/dashboard", token: token, resource: resourceProduct})
	if err != nil {
		return nil, err
	}

	var dto dashboardDTO
	if err := decodeData(env, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

func (c *Client) productCall(ctx context.Context, in call) (*entity.Product, error) {
	in.resource = resourceProduct
	env, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}

	var dto productDTO
	if err := decodeData(env, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

func (c *Client) productsCall(ctx context.Context, in call) ([]*entity.Product, error) {
	in.resource = resourceProduct
	env, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}

	var dtos []productDTO
	if err := decodeData(env, &dtos); err != nil {
		return nil, err
	}

	return toProducts(dtos), nil
}

func productPath(id string) string {
	return "/products/" + url.PathEscape(id)
}
