package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultAlertLimit = 20
	maxAlertLimit     = 100
)

type alertService struct {
	alertRepo repository.AlertRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewAlertService is the constructor for alertService.
func NewAlertService(alertRepo repository.AlertRepository, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *alertService) Receive(ctx context.Context, messageID string, event *service.LowStockAlertEvent) error {
	if strings.TrimSpace(messageID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("alert message has no ID")
	}
	if event == nil || strings.TrimSpace(event.ProductID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("alert has no product ID")
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = srv.now()
	}

	alert := &entity.LowStockAlert{
		ID:          uuid.New(),
		MessageID:   messageID,
		ProductID:   event.ProductID,
		SKU:         event.SKU,
		Name:        event.Name,
		Stock:       event.Stock,
		MinStock:    event.MinStock,
		Unit:        event.Unit,
		TriggeredBy: event.TriggeredBy,
		RequestID:   event.RequestID,
		OccurredAt:  occurredAt,
		ReceivedAt:  srv.now(),
	}

	created, err := srv.alertRepo.RecordAlert(ctx, alert)
	if err != nil {
		return errors.Wrap(err, "failed to record low stock alert")
	}

	if !created {
		srv.log(ctx).Info("Low stock alert already recorded", slog.String("message_id", messageID))

		return nil
	}

	srv.log(ctx).Warn("Product needs restocking",
		slog.String("product_id", alert.ProductID),
		slog.String("sku", alert.SKU),
		slog.Int("stock", alert.Stock),
		slog.Int("min_stock", alert.MinStock),
		slog.Int("shortfall", alert.Shortfall()),
	)

	return nil
}

func (srv *alertService) Recent(ctx context.Context, session *entity.Session, limit int) ([]*entity.LowStockAlert, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	switch {
	case limit <= 0:
		limit = defaultAlertLimit
	case limit > maxAlertLimit:
		limit = maxAlertLimit
	}

	alerts, err := srv.alertRepo.ListRecentAlerts(ctx, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list low stock alerts", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list low stock alerts")
	}

	return alerts, nil
}
