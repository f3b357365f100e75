package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/infra/pubsub"
	mockUC "inventory/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushBody(t *testing.T, messageID string, event *service.LowStockAlertEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushEnvelope
	msg.Subscription = "projects/test/subscriptions/low-stock-sub"
	msg.Message.MessageID = messageID
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockAlertUsecase) {
	alertUC := mockUC.NewMockAlertUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AlertUC: alertUC,
	})

	return h, alertUC
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.LowStockAlertEvent{ProductID: "p-1", SKU: "ELC-001", Stock: 2, MinStock: 10, RequestID: "req-event"}

	t.Run("delivers the alert with the attribute request id", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		alertUC.EXPECT().
			Receive(mock.Anything, "msg-1", mock.MatchedBy(func(e *service.LowStockAlertEvent) bool {
				return e.ProductID == "p-1" && e.Stock == 2
			})).
			RunAndReturn(func(ctx context.Context, _ string, _ *service.LowStockAlertEvent) error {
				assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := push(h, newPushBody(t, "msg-1", event, map[string]string{"request_id": "req-attr"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("redelivered alert keeps its message id", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		env, err := pubsub.NewLowStockEnvelope(event, time.Now())
		require.NoError(t, err)
		body, err := json.Marshal(env)
		require.NoError(t, err)

		alertUC.EXPECT().Receive(mock.Anything, env.Message.MessageID, mock.Anything).Return(nil).Twice()

		assert.Equal(t, http.StatusOK, push(h, string(body)).Code)
		assert.Equal(t, http.StatusOK, push(h, string(body)).Code)
	})

	t.Run("falls back to the event request id", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		alertUC.EXPECT().
			Receive(mock.Anything, "msg-2", mock.Anything).
			RunAndReturn(func(ctx context.Context, _ string, _ *service.LowStockAlertEvent) error {
				assert.Equal(t, "req-event", deliverycontext.GetRequestIDFromContext(ctx))

				return nil
			})

		rec := push(h, newPushBody(t, "msg-2", event, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body is acked", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)

		assert.Equal(t, http.StatusOK, push(h, `{"message":`).Code)
	})

	t.Run("data that is not base64 is acked", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)

		assert.Equal(t, http.StatusOK, push(h, `{"message":{"data":"%%%","messageId":"m"}}`).Code)
	})

	t.Run("data that is not an alert is acked", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)
		data := base64.StdEncoding.EncodeToString([]byte("not json"))

		assert.Equal(t, http.StatusOK, push(h, `{"message":{"data":"`+data+`","messageId":"m"}}`).Code)
	})

	t.Run("invalid alerts are acknowledged", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		alertUC.EXPECT().Receive(mock.Anything, "msg-3", mock.Anything).
			Return(domainerrors.ErrValidationFailed.WrapMessage("alert has no product ID"))

		rec := push(h, newPushBody(t, "msg-3", &service.LowStockAlertEvent{}, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failures are retried", func(t *testing.T) {
		h, alertUC := newTestPushHandler(t, nil)
		alertUC.EXPECT().Receive(mock.Anything, "msg-4", mock.Anything).Return(errors.New("connection reset"))

		rec := push(h, newPushBody(t, "msg-4", event, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
		cfg.Env.Env = "production"
		h, _ := newTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)
		h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

		rec := push(h, newPushBody(t, "msg-5", event, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: "production", provider: "google", want: true},
		{name: "google locally", env: "local", provider: "google", want: false},
		{name: "google in develop", env: "develop", provider: "google", want: false},
		{name: "local provider", env: "production", provider: "local", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h, _ := newTestPushHandler(t, cfg)

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Token abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")

	req.Header.Set("Authorization", "Bearer ")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}

func TestPushAudience(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push", nil)
	assert.Equal(t, "http://worker.internal/push", pushAudience(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://worker.internal/push", pushAudience(req))
}
