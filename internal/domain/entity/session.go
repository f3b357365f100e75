package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the read-only record describing who is using the console.
// It is threaded explicitly through handlers and use cases instead of living in global state.
type Session struct {
	ID            uuid.UUID
	User          User
	UpstreamToken string
	UserAgent     string
	IPAddress     string
	ExpiresAt     time.Time
	CreatedAt     time.Time
	LastSeenAt    time.Time
}

// Role returns the role of the session's user.
func (s *Session) Role() Role {
	if s == nil {
		return ""
	}

	return s.User.Role
}

// IsExpired reports whether the session has expired at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionInfo is the public view of a session, safe to return to clients.
type SessionInfo struct {
	ID         uuid.UUID `json:"id"`
	UserAgent  string    `json:"userAgent"`
	IPAddress  string    `json:"ipAddress"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Current    bool      `json:"current"`
}

// Info converts the session into its public view.
func (s *Session) Info(currentID uuid.UUID) *SessionInfo {
	return &SessionInfo{
		ID:         s.ID,
		UserAgent:  s.UserAgent,
		IPAddress:  s.IPAddress,
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeenAt,
		ExpiresAt:  s.ExpiresAt,
		Current:    s.ID == currentID,
	}
}

// ClientInfo carries request metadata recorded on a new session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}
