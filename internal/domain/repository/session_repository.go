// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository stores console sessions so that they survive restarts and can be revoked.
type SessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID returns an unexpired session.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindSessionsByUserID returns the unexpired sessions of a user, newest first.
	FindSessionsByUserID(ctx context.Context, userID string) ([]*entity.Session, error)

	// TouchSession records activity on a session.
	TouchSession(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateSessionUser refreshes the user snapshot on every session of that user.
	UpdateSessionUser(ctx context.Context, user *entity.User) error

	// DeleteSession ends one session.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteSessionsByUserID ends every session of a user.
	DeleteSessionsByUserID(ctx context.Context, userID string) error

	// DeleteExpiredSessions removes sessions that expired before now and reports how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)

	// CountActiveSessionsByUserID returns the number of unexpired sessions of a user.
	CountActiveSessionsByUserID(ctx context.Context, userID string) (int, error)
}
