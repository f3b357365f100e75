package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"inventory/internal/domain/service"

	"github.com/pkg/errors"
)

const localPublishTimeout = 10 * time.Second

// localHTTPPublisher posts alerts straight to the alert worker in push format.
// It stands in for Pub/Sub when running on a laptop.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

// localEndpoint falls back to the worker's push route on localhost.
func localEndpoint(endpoint string, pushPort int) string {
	if endpoint != "" || pushPort == 0 {
		return endpoint
	}

	return fmt.Sprintf("http://localhost:%d/push", pushPort)
}

func (p *localHTTPPublisher) PublishLowStockAlert(ctx context.Context, event *service.LowStockAlertEvent) error {
	env, err := NewLowStockEnvelope(event, p.now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post alert for product %s", event.ProductID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("alert worker answered %d for message %s", resp.StatusCode, env.Message.MessageID)
	}

	p.logger.DebugContext(ctx, "Low stock alert pushed",
		slog.String("message_id", env.Message.MessageID),
		slog.String("product_id", event.ProductID),
		slog.Int("stock", event.Stock),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
