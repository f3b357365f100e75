package entity

import (
	"time"

	"github.com/google/uuid"
)

// LowStockAlert is a restocking alert received from the message queue.
type LowStockAlert struct {
	ID          uuid.UUID `json:"id"`
	MessageID   string    `json:"messageId"`
	ProductID   string    `json:"productId"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	Unit        string    `json:"unit"`
	TriggeredBy string    `json:"triggeredBy"`
	RequestID   string    `json:"requestId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

// Shortfall is how many units are missing to get back above the minimum stock.
func (a *LowStockAlert) Shortfall() int {
	return max(a.MinStock-a.Stock+1, 0)
}
