package usecase

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"
)

// AlertUsecase records restocking alerts delivered by the queue and lists them in the console.
type AlertUsecase interface {
	// Receive records a delivered alert. A redelivered message is accepted without a second record.
	Receive(ctx context.Context, messageID string, event *service.LowStockAlertEvent) error
	// Recent returns the latest alerts, at most limit of them.
	Recent(ctx context.Context, session *entity.Session, limit int) ([]*entity.LowStockAlert, error)
}
