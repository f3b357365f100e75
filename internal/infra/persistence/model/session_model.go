// Package model holds the GORM models of the console's own tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'console_sessions' table. The user columns are a snapshot of the
// upstream account taken at login and refreshed on profile changes.
type SessionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        string    `gorm:"type:varchar(64);not null;index"`
	UserName      string    `gorm:"type:varchar(100)"`
	UserEmail     string    `gorm:"type:varchar(255);not null"`
	UserRole      string    `gorm:"type:varchar(16);not null"`
	UpstreamToken string    `gorm:"type:text;not null"`
	UserAgent     string    `gorm:"type:varchar(512)"`
	IPAddress     string    `gorm:"type:varchar(64)"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	LastSeenAt    time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "console_sessions"
}
