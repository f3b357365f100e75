package repository

import (
	"context"

	"inventory/internal/domain/entity"
)

// AlertRepository stores the low-stock alerts received by the alert worker.
type AlertRepository interface {
	// RecordAlert stores an alert once per message ID. It reports false when the message was already recorded.
	RecordAlert(ctx context.Context, alert *entity.LowStockAlert) (bool, error)

	// ListRecentAlerts returns the most recently received alerts, newest first.
	ListRecentAlerts(ctx context.Context, limit int) ([]*entity.LowStockAlert, error)
}
