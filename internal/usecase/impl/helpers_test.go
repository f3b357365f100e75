package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"inventory/config"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			TTL:               24 * time.Hour,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

func newTestSession(role entity.Role) *entity.Session {
	return &entity.Session{
		ID: uuid.New(),
		User: entity.User{
			ID:    "665f1c2e9b1e8a0012345678",
			Name:  "Sari",
			Email: "sari@example.com",
			Role:  role,
		},
		UpstreamToken: "upstream-token",
		ExpiresAt:     fixedNow.Add(time.Hour),
		CreatedAt:     fixedNow,
		LastSeenAt:    fixedNow,
	}
}

// expectTransaction runs the transaction body against a factory handing out repo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, repo repository.SessionRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewSessionRepository().Return(repo)

			return fn(factory)
		})
}
