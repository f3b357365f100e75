package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"inventory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	eventTypeLowStock = "inventory.low_stock"
	localSubscription = "projects/local/subscriptions/low-stock-sub"
)

// alertNamespace seeds message ids so a republished alert keeps the id of the first attempt.
var alertNamespace = uuid.MustParse("5b0f0d1e-3c52-4c8f-9f3e-6a1d2b7c9e40")

// PushEnvelope is the body Pub/Sub posts to push subscribers.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLowStockEnvelope wraps the alert the way Pub/Sub would deliver it.
func NewLowStockEnvelope(event *service.LowStockAlertEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	env := &PushEnvelope{Subscription: localSubscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = alertAttributes(event)
	env.Message.MessageID = alertMessageID(event)
	env.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return env, nil
}

// LowStockAlert decodes the alert carried by the envelope.
func (e *PushEnvelope) LowStockAlert() (*service.LowStockAlertEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.LowStockAlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse low stock alert")
	}

	return &event, nil
}

// RequestID returns the tracing id from the attributes, then from the payload.
func (e *PushEnvelope) RequestID(event *service.LowStockAlertEvent) string {
	if id := e.Message.Attributes["request_id"]; id != "" {
		return id
	}
	if event != nil {
		return event.RequestID
	}

	return ""
}

func alertAttributes(event *service.LowStockAlertEvent) map[string]string {
	attributes := map[string]string{
		"event_type": eventTypeLowStock,
		"product_id": event.ProductID,
		"sku":        event.SKU,
		"shortfall":  strconv.Itoa(max(event.MinStock-event.Stock, 0)),
	}
	if !event.OccurredAt.IsZero() {
		attributes["occurred_at"] = event.OccurredAt.UTC().Format(time.RFC3339)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func alertMessageID(event *service.LowStockAlertEvent) string {
	key := fmt.Sprintf("%s|%d|%d", event.ProductID, event.Stock, event.OccurredAt.UnixNano())

	return uuid.NewSHA1(alertNamespace, []byte(key)).String()
}
