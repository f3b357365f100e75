package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	ActiveSessions(ctx context.Context, session *entity.Session) ([]*entity.SessionInfo, error)
	RevokeSession(ctx context.Context, session *entity.Session, sessionID uuid.UUID) error
	CleanupExpired(ctx context.Context) (int64, error)
}
