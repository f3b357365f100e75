// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	DashboardHandler *handler.DashboardHandler
	AlertHandler     *handler.AlertHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	productHandler   *handler.ProductHandler
	dashboardHandler *handler.DashboardHandler
	alertHandler     *handler.AlertHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		productHandler:   params.ProductHandler,
		dashboardHandler: params.DashboardHandler,
		alertHandler:     params.AlertHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)

		// Account routes that require a session
		authGroup.POST("/logout", r.authHandler.Logout, authenticated)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, authenticated)
		authGroup.PUT("/password", r.authHandler.ChangePassword, authenticated)
		authGroup.GET("/sessions", r.authHandler.ListSessions, authenticated)
		authGroup.DELETE("/sessions/:id", r.authHandler.RevokeSession, authenticated)
	}

	e.GET("/navigation", r.dashboardHandler.Navigation, authenticated)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(authenticated) // All API v1 routes require a session

	apiV1.GET("/dashboard", r.dashboardHandler.Overview)
	apiV1.GET("/alerts", r.alertHandler.Recent)

	writers := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleStaff)
	admins := r.authMiddleware.RequireRole(entity.RoleAdmin)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/low-stock", r.productHandler.LowStock)
		productsGroup.GET("/category/:category", r.productHandler.ByCategory)
		productsGroup.POST("/preview", r.productHandler.Preview)
		productsGroup.GET("/:id", r.productHandler.Get)
		productsGroup.GET("/:id/label", r.productHandler.Label)

		productsGroup.POST("", r.productHandler.Create, writers)
		productsGroup.PUT("/:id", r.productHandler.Update, writers)
		productsGroup.PATCH("/:id/stock", r.productHandler.AdjustStock, writers)
		productsGroup.DELETE("/:id", r.productHandler.Delete, admins)
	}
}
