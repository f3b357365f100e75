package impl

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	mockRepo "inventory/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAlertServiceForTest(t *testing.T) (*alertService, *mockRepo.MockAlertRepository) {
	alertRepo := mockRepo.NewMockAlertRepository(t)

	srv := NewAlertService(alertRepo, newDiscardLogger()).(*alertService)
	srv.now = func() time.Time { return fixedNow }

	return srv, alertRepo
}

func newTestAlertEvent() *service.LowStockAlertEvent {
	return &service.LowStockAlertEvent{
		RequestID:   "req-1",
		ProductID:   "p-1",
		SKU:         "ELC-001",
		Name:        "USB Cable",
		Stock:       2,
		MinStock:    10,
		Unit:        "pcs",
		TriggeredBy: "staff@example.com",
		OccurredAt:  fixedNow.Add(-time.Minute),
	}
}

func TestAlertService_Receive(t *testing.T) {
	ctx := context.Background()

	t.Run("records a new alert", func(t *testing.T) {
		srv, alertRepo := newAlertServiceForTest(t)
		alertRepo.EXPECT().
			RecordAlert(ctx, mock.MatchedBy(func(a *entity.LowStockAlert) bool {
				return a.MessageID == "msg-1" &&
					a.ProductID == "p-1" &&
					a.Stock == 2 &&
					a.RequestID == "req-1" &&
					a.OccurredAt.Equal(fixedNow.Add(-time.Minute)) &&
					a.ReceivedAt.Equal(fixedNow)
			})).
			Return(true, nil)

		assert.NoError(t, srv.Receive(ctx, "msg-1", newTestAlertEvent()))
	})

	t.Run("redelivery is accepted", func(t *testing.T) {
		srv, alertRepo := newAlertServiceForTest(t)
		alertRepo.EXPECT().RecordAlert(ctx, mock.Anything).Return(false, nil)

		assert.NoError(t, srv.Receive(ctx, "msg-1", newTestAlertEvent()))
	})

	t.Run("missing occurrence time falls back to now", func(t *testing.T) {
		srv, alertRepo := newAlertServiceForTest(t)
		event := newTestAlertEvent()
		event.OccurredAt = time.Time{}
		alertRepo.EXPECT().
			RecordAlert(ctx, mock.MatchedBy(func(a *entity.LowStockAlert) bool { return a.OccurredAt.Equal(fixedNow) })).
			Return(true, nil)

		assert.NoError(t, srv.Receive(ctx, "msg-2", event))
	})

	t.Run("invalid messages are rejected without touching the store", func(t *testing.T) {
		srv, _ := newAlertServiceForTest(t)

		assert.ErrorIs(t, srv.Receive(ctx, "", newTestAlertEvent()), domainerrors.ErrValidationFailed)
		assert.ErrorIs(t, srv.Receive(ctx, "msg-3", &service.LowStockAlertEvent{}), domainerrors.ErrValidationFailed)
		assert.ErrorIs(t, srv.Receive(ctx, "msg-3", nil), domainerrors.ErrValidationFailed)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		srv, alertRepo := newAlertServiceForTest(t)
		alertRepo.EXPECT().RecordAlert(ctx, mock.Anything).Return(false, errors.New("connection reset"))

		err := srv.Receive(ctx, "msg-4", newTestAlertEvent())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestAlertService_Recent(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(entity.RoleViewer)

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: defaultAlertLimit},
		{name: "explicit", limit: 5, wantLimit: 5},
		{name: "capped", limit: 1000, wantLimit: maxAlertLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, alertRepo := newAlertServiceForTest(t)
			alertRepo.EXPECT().ListRecentAlerts(ctx, tt.wantLimit).Return([]*entity.LowStockAlert{{ProductID: "p-1"}}, nil)

			alerts, err := srv.Recent(ctx, session, tt.limit)

			require.NoError(t, err)
			assert.Len(t, alerts, 1)
		})
	}

	t.Run("requires a session", func(t *testing.T) {
		srv, _ := newAlertServiceForTest(t)

		_, err := srv.Recent(ctx, nil, 10)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("store failure", func(t *testing.T) {
		srv, alertRepo := newAlertServiceForTest(t)
		alertRepo.EXPECT().ListRecentAlerts(ctx, defaultAlertLimit).Return(nil, errors.New("boom"))

		_, err := srv.Recent(ctx, session, 0)

		var appErr domainerrors.AppError
		assert.True(t, errors.As(err, &appErr))
	})
}
