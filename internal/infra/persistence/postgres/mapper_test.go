package postgres

import (
	"testing"
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionMapping_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	session := &entity.Session{
		ID: uuid.New(),
		User: entity.User{
			ID:    "665f1c2e9b1e8a0012345678",
			Name:  "Sari",
			Email: "sari@example.com",
			Role:  entity.RoleAdmin,
		},
		UpstreamToken: "upstream-token",
		UserAgent:     "Mozilla/5.0",
		IPAddress:     "10.0.0.1",
		ExpiresAt:     now.Add(24 * time.Hour),
		LastSeenAt:    now,
		CreatedAt:     now,
	}

	m := fromSessionDomain(session)
	assert.Equal(t, "admin", m.UserRole)
	assert.Equal(t, session.User.ID, m.UserID)
	assert.Equal(t, "console_sessions", m.TableName())

	back := toSessionDomain(m)
	assert.Equal(t, session, back)
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(assertErr(`ERROR: duplicate key value violates unique constraint "console_sessions_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(assertErr("connection reset")))
	assert.True(t, isNotNullConstraintViolation(assertErr(`ERROR: null value in column "user_email" (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(assertErr("timeout")))
}

type stringErr string

func (e stringErr) Error() string { return string(e) }

func assertErr(msg string) error { return stringErr(msg) }
