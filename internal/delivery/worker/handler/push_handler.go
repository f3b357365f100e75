// Package handler contains the Pub/Sub push handlers of the alert worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/infra/pubsub"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler stores low-stock alerts delivered by Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	alertUC        usecase.AlertUsecase
}

type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewPushHandler checks push tokens only for the Google provider outside local and develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	env := params.Config.Env.Env
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		env != constants.EnvDevelop && env != constants.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		alertUC:        params.AlertUC,
	}
}

// HandlePush acknowledges an alert with 200 unless redelivery could help, which answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("Rejected push without a valid token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Redelivering a malformed message cannot help, so it is acked and dropped.
	var env pubsub.PushEnvelope
	if err := c.Bind(&env); err != nil {
		h.logger.Error("Dropping malformed push body", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
	event, err := env.LowStockAlert()
	if err != nil {
		h.logger.Error("Dropping malformed low stock alert",
			slog.String("message_id", env.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	ctx, logger := h.traced(c.Request().Context(), &env, event)
	logger = logger.With(slog.String("message_id", env.Message.MessageID))

	err = h.alertUC.Receive(ctx, env.Message.MessageID, event)
	switch {
	case err == nil:
		logger.Info("Low stock alert stored",
			slog.String("product_id", event.ProductID),
			slog.Int("stock", event.Stock),
			slog.Int("min_stock", event.MinStock),
		)

		return c.NoContent(http.StatusOK)
	case errors.Is(err, domainerrors.ErrValidationFailed):
		logger.Warn("Dropping invalid low stock alert", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	default:
		logger.Error("Failed to store low stock alert", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}
}

// traced carries the publisher's request id into ctx, minting one when none was sent.
func (h *PushHandler) traced(ctx context.Context, env *pubsub.PushEnvelope, event *service.LowStockAlertEvent) (context.Context, *slog.Logger) {
	requestID := env.RequestID(event)
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)

	return deliverycontext.WithLogger(ctx, logger), logger
}

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// verifyPubSubToken validates the bearer token against this endpoint's URL as audience.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	payload, err := idtoken.Validate(req.Context(), token, pushAudience(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}

	return nil
}

// pushAudience rebuilds the public URL, honouring the proxy's forwarded scheme.
func pushAudience(req *http.Request) string {
	scheme := req.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if req.TLS != nil {
			scheme = "https"
		}
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}
