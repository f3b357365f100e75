package handler

import (
	"net/http"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the dashboard and the navigation state.
type DashboardHandler struct {
	dashboardUC  usecase.DashboardUsecase
	navigationUC usecase.NavigationUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase, navigationUC usecase.NavigationUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:  dashboardUC,
		navigationUC: navigationUC,
	}
}

// Overview returns the dashboard figures and the most recent products.
func (h *DashboardHandler) Overview(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	overview, err := h.dashboardUC.Overview(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// Navigation returns the sidebar for the current session. The optional path query marks the active item.
func (h *DashboardHandler) Navigation(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	return response.Success(c, http.StatusOK, h.navigationUC.Menu(session, c.QueryParam("path")))
}
