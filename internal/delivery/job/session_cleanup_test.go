package job

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUC "inventory/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionCleanup_Serve(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("runs on every tick until stopped", func(t *testing.T) {
		sessionUC := mockUC.NewMockSessionUsecase(t)
		ran := make(chan struct{}, 1)
		sessionUC.EXPECT().CleanupExpired(mock.Anything).
			RunAndReturn(func(context.Context) (int64, error) {
				select {
				case ran <- struct{}{}:
				default:
				}

				return 3, nil
			})

		job := newSessionCleanup(5*time.Millisecond, sessionUC, logger)
		served := make(chan error, 1)
		go func() { served <- job.Serve(context.Background()) }()

		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("cleanup did not run")
		}

		close(job.done)
		assert.NoError(t, <-served)
	})

	t.Run("errors do not stop the job", func(t *testing.T) {
		sessionUC := mockUC.NewMockSessionUsecase(t)
		calls := make(chan struct{}, 2)
		sessionUC.EXPECT().CleanupExpired(mock.Anything).
			RunAndReturn(func(context.Context) (int64, error) {
				select {
				case calls <- struct{}{}:
				default:
				}

				return 0, errors.New("database unavailable")
			})

		ctx, cancel := context.WithCancel(context.Background())
		job := newSessionCleanup(5*time.Millisecond, sessionUC, logger)
		served := make(chan error, 1)
		go func() { served <- job.Serve(ctx) }()

		for range 2 {
			select {
			case <-calls:
			case <-time.After(time.Second):
				t.Fatal("cleanup stopped after an error")
			}
		}

		cancel()
		assert.NoError(t, <-served)
	})
}
