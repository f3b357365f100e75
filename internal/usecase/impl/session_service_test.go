package impl

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (*sessionService, *mockRepo.MockTransactionManager, *mockRepo.MockSessionRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	srv := NewSessionService(txManager, newDiscardLogger()).(*sessionService)
	srv.now = func() time.Time { return fixedNow }

	return srv, txManager, sessionRepo
}

func TestSessionService_ActiveSessions(t *testing.T) {
	ctx := context.Background()
	current := newTestSession(entity.RoleStaff)
	other := newTestSession(entity.RoleStaff)

	srv, txManager, sessionRepo := newSessionServiceForTest(t)
	expectTransaction(t, txManager, sessionRepo)
	sessionRepo.EXPECT().FindSessionsByUserID(ctx, current.User.ID).Return([]*entity.Session{other, current}, nil)

	infos, err := srv.ActiveSessions(ctx, current)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.False(t, infos[0].Current)
	assert.True(t, infos[1].Current)
	assert.Equal(t, current.ID, infos[1].ID)
}

func TestSessionService_RevokeSession(t *testing.T) {
	ctx := context.Background()
	current := newTestSession(entity.RoleStaff)

	t.Run("own session", func(t *testing.T) {
		srv, txManager, sessionRepo := newSessionServiceForTest(t)
		target := newTestSession(entity.RoleStaff)
		expectTransaction(t, txManager, sessionRepo)
		sessionRepo.EXPECT().FindSessionByID(ctx, target.ID).Return(target, nil)
		sessionRepo.EXPECT().DeleteSession(ctx, target.ID).Return(nil)

		assert.NoError(t, srv.RevokeSession(ctx, current, target.ID))
	})

	t.Run("someone else's session looks missing", func(t *testing.T) {
		srv, txManager, sessionRepo := newSessionServiceForTest(t)
		target := newTestSession(entity.RoleAdmin)
		target.User.ID = "another-user"
		expectTransaction(t, txManager, sessionRepo)
		sessionRepo.EXPECT().FindSessionByID(ctx, target.ID).Return(target, nil)

		err := srv.RevokeSession(ctx, current, target.ID)

		assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		srv, txManager, sessionRepo := newSessionServiceForTest(t)
		id := uuid.New()
		expectTransaction(t, txManager, sessionRepo)
		sessionRepo.EXPECT().FindSessionByID(ctx, id).Return(nil, repository.ErrSessionNotFound)

		err := srv.RevokeSession(ctx, current, id)

		assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})
}

func TestSessionService_CleanupExpired(t *testing.T) {
	ctx := context.Background()

	srv, txManager, sessionRepo := newSessionServiceForTest(t)
	expectTransaction(t, txManager, sessionRepo)
	sessionRepo.EXPECT().DeleteExpiredSessions(ctx, fixedNow).Return(int64(4), nil)

	n, err := srv.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
