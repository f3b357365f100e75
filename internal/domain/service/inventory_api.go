package service

import (
	"context"

	"inventory/internal/domain/entity"
)

// RegistrationPayload is what is sent upstream to create an account. The confirmation field is dropped.
type RegistrationPayload struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

// PasswordChangePayload is the upstream body of a password change.
type PasswordChangePayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProductList is one page of products as returned upstream.
type ProductList struct {
	Products   []*entity.Product
	Pagination entity.Pagination
}

// InventoryAPI is the upstream inventory REST API. Every call except Login and Register
// carries the upstream bearer token of the acting session.
type InventoryAPI interface {
	Login(ctx context.Context, creds entity.CredentialDraft) (*entity.AuthResult, error)
	Register(ctx context.Context, payload RegistrationPayload) (*entity.AuthResult, error)
	Me(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, token string, profile entity.ProfileDraft) (*entity.User, error)
	ChangePassword(ctx context.Context, token string, payload PasswordChangePayload) error

	ListProducts(ctx context.Context, token string, query entity.ProductQuery) (*ProductList, error)
	GetProduct(ctx context.Context, token, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, token string, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, token, id string, input entity.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
	LowStockProducts(ctx context.Context, token string) ([]*entity.Product, error)
	ProductsByCategory(ctx context.Context, token string, category entity.Category) ([]*entity.Product, error)
	UpdateStock(ctx context.Context, token, id string, adjustment entity.StockAdjustment) (*entity.Product, error)
	DashboardStats(ctx context.Context, token string) (*entity.DashboardStats, error)
}
