package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActiveSessions lists the unexpired sessions of the session's user, marking the current one.
func (srv *sessionService) ActiveSessions(ctx context.Context, session *entity.Session) ([]*entity.SessionInfo, error) {
	var infos []*entity.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := repoFactory.NewSessionRepository().FindSessionsByUserID(ctx, session.User.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find sessions")
		}

		infos = make([]*entity.SessionInfo, 0, len(sessions))
		for _, s := range sessions {
			infos = append(infos, s.Info(session.ID))
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get active sessions", slog.String("userID", session.User.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get active sessions")
	}

	return infos, nil
}

// RevokeSession ends one of the user's own sessions.
func (srv *sessionService) RevokeSession(ctx context.Context, session *entity.Session, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking session", slog.String("userID", session.User.ID), slog.String("sessionID", sessionID.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		// 1. Find the session
		target, err := sessionRepo.FindSessionByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
				return domainerrors.ErrSessionNotFound
			}

			return errors.Wrap(err, "failed to find session")
		}

		// 2. Verify ownership
		if target.User.ID != session.User.ID {
			return domainerrors.ErrSessionNotFound
		}

		// 3. Delete the session
		if err := sessionRepo.DeleteSession(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to revoke session", slog.String("sessionID", sessionID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// CleanupExpired removes every expired session.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	var deleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NewSessionRepository().DeleteExpiredSessions(ctx, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}
		deleted = n

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", deleted))
	}

	return deleted, nil
}
