package model

import (
	"time"

	"github.com/google/uuid"
)

// LowStockAlertModel is the GORM model for received low-stock alerts.
type LowStockAlertModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	MessageID   string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ProductID   string    `gorm:"type:varchar(255);not null;index"`
	SKU         string    `gorm:"type:varchar(100)"`
	Name        string    `gorm:"type:varchar(255)"`
	Stock       int       `gorm:"not null"`
	MinStock    int       `gorm:"not null"`
	Unit        string    `gorm:"type:varchar(20)"`
	TriggeredBy string    `gorm:"type:varchar(255)"`
	RequestID   string    `gorm:"type:varchar(255)"`
	OccurredAt  time.Time `gorm:"not null"`
	ReceivedAt  time.Time `gorm:"not null;index"`
}

func (LowStockAlertModel) TableName() string {
	return "low_stock_alerts"
}
