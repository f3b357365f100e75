package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory/config"
	"inventory/internal/delivery/worker/handler"
	mockUC "inventory/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *workerServer {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local", PushPort: 18090}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:  cfg,
		Logger:  logger,
		AlertUC: mockUC.NewMockAlertUsecase(t),
	})

	srv, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: push,
	})
	require.NoError(t, err)

	return srv.(*workerServer)
}

func TestNewServer_Health(t *testing.T) {
	srv := newTestServer(t)
	assert.Equal(t, "0.0.0.0:18090", srv.addr)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "local", body["provider"])
}

func TestNewServer_PushBodyLimit(t *testing.T) {
	srv := newTestServer(t)

	body := `{"message":{"data":"` + strings.Repeat("A", 70*1024) + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
