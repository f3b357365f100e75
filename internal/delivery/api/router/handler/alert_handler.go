package handler

import (
	"net/http"
	"strconv"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AlertHandler lists the low-stock alerts recorded by the alert worker.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(alertUC usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{alertUC: alertUC}
}

// Recent returns the latest alerts. The optional limit query caps the count.
func (h *AlertHandler) Recent(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Limit must be a number")
		}
		limit = parsed
	}

	alerts, err := h.alertUC.Recent(c.Request().Context(), session, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}
