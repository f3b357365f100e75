// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput carries the login form and the client it was submitted from.
type LoginInput struct {
	Draft  entity.CredentialDraft
	Client entity.ClientInfo
}

// RegisterInput carries the registration form and the client it was submitted from.
type RegisterInput struct {
	Draft  entity.RegistrationDraft
	Client entity.ClientInfo
}

// --- Output DTOs ---

// AuthOutput is returned after a successful login or registration.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines the authentication and account flows of the console.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Logout(ctx context.Context, session *entity.Session) error
	// Authenticate resolves a console bearer token to its live session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
	CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error)
	UpdateProfile(ctx context.Context, session *entity.Session, draft entity.ProfileDraft) (*entity.User, error)
	ChangePassword(ctx context.Context, session *entity.Session, draft entity.PasswordChangeDraft) error
}
