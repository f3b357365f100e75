package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

// RecordAlert inserts the alert unless its message ID is already stored. Pub/Sub delivers at least once.
func (repo *alertRepository) RecordAlert(ctx context.Context, alert *entity.LowStockAlert) (bool, error) {
	alertM := fromAlertDomain(alert)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoNothing: true,
		}).
		Create(alertM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return false, domainerrors.ErrValidationFailed.WrapMessage("missing required alert information")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record low stock alert")
	}

	return result.RowsAffected > 0, nil
}

func (repo *alertRepository) ListRecentAlerts(ctx context.Context, limit int) ([]*entity.LowStockAlert, error) {
	var alertModels []*model.LowStockAlertModel
	err := repo.db.WithContext(ctx).
		Order("received_at DESC").
		Limit(limit).
		Find(&alertModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	alerts := make([]*entity.LowStockAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}
