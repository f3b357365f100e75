package service

import (
	"context"
	"time"
)

// LowStockAlertEvent is published when a write leaves a product at or below its minimum stock.
type LowStockAlertEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	ProductID   string    `json:"product_id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	Unit        string    `json:"unit"`
	TriggeredBy string    `json:"triggered_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLowStockAlert publishes a restocking alert for downstream consumers
	PublishLowStockAlert(ctx context.Context, event *LowStockAlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
