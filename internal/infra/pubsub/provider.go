// Package pubsub publishes low-stock alerts to a message queue.
package pubsub

import (
	"context"
	"log/slog"

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/lifecycle"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderNoop   = constants.PubSubProviderNoop
	ProviderLocal  = constants.PubSubProviderLocal
	ProviderGoogle = constants.PubSubProviderGoogle
)

// noopPublisher drops alerts. Alerts are still recorded by the console itself.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLowStockAlert(ctx context.Context, event *service.LowStockAlertEvent) error {
	p.logger.DebugContext(ctx, "Alert publishing disabled", slog.String("product_id", event.ProductID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for the configured provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNoop {
		params.Logger.Info("Alert publishing disabled")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := newPublisher(cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case ProviderLocal:
		endpoint := localEndpoint(cfg.LocalEndpoint, cfg.PushPort)
		if endpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing alerts to local worker", slog.String("endpoint", endpoint))

		return NewLocalHTTPPublisher(endpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
