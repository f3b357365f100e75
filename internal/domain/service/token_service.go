package service

import (
	"time"

	"inventory/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of a console session token.
type Claims struct {
	SessionID uuid.UUID
	UserID    string
	Role      entity.Role
	Type      string
	jwt.RegisteredClaims
}

// TokenService issues and validates the bearer tokens handed to console clients.
// A token only points at a stored session; the upstream credential never leaves the console.
type TokenService interface {
	// GenerateSessionToken signs a token for the session, expiring with it.
	GenerateSessionToken(session *entity.Session) (string, error)

	// ValidateToken checks signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)

	// GetSessionDuration returns the configured session lifetime.
	GetSessionDuration() time.Duration
}
