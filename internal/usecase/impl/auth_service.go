// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/domain/validation"
	"inventory/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	sessionRepo       repository.SessionRepository
	api               service.InventoryAPI
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SessionRepo  repository.SessionRepository
	API          service.InventoryAPI
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Session != nil {
		maxActiveSessions = params.Config.Session.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		sessionRepo:       params.SessionRepo,
		api:               params.API,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the form, authenticates upstream and opens a console session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if errs := validation.ValidateLogin(input.Draft); !errs.Valid() {
		return nil, domainerrors.NewFieldValidationError(errs)
	}

	result, err := srv.api.Login(ctx, input.Draft)
	if err != nil {
		srv.log(ctx).Warn("Upstream login failed", slog.String("email", input.Draft.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to login")
	}

	return srv.openSession(ctx, result, input.Client)
}

// Register checks the form, creates the account upstream and opens a console session.
// The confirmation field never leaves the console.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if errs := validation.ValidateRegistration(input.Draft); !errs.Valid() {
		return nil, domainerrors.NewFieldValidationError(errs)
	}

	payload := service.RegistrationPayload{
		Name:     input.Draft.Name,
		Email:    input.Draft.Email,
		Password: input.Draft.Password,
		Role:     input.Draft.Role,
	}

	result, err := srv.api.Register(ctx, payload)
	if err != nil {
		srv.log(ctx).Warn("Upstream registration failed", slog.String("email", payload.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register")
	}

	return srv.openSession(ctx, result, input.Client)
}

func (srv *authService) openSession(ctx context.Context, result *entity.AuthResult, client entity.ClientInfo) (*usecase.AuthOutput, error) {
	if result == nil || result.User == nil || result.Token == "" {
		return nil, domainerrors.ErrUpstreamRejected.WrapMessage("upstream returned no account")
	}

	now := srv.now()
	session := &entity.Session{
		ID:            uuid.New(),
		User:          *result.User,
		UpstreamToken: result.Token,
		UserAgent:     client.UserAgent,
		IPAddress:     client.IPAddress,
		ExpiresAt:     now.Add(srv.tokenService.GetSessionDuration()),
		CreatedAt:     now,
		LastSeenAt:    now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		if err := srv.evictOldestSessions(ctx, sessionRepo, session.User.ID); err != nil {
			return err
		}

		return sessionRepo.CreateSession(ctx, session)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store session", slog.String("userID", session.User.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	token, err := srv.tokenService.GenerateSessionToken(session)
	if err != nil {
		return nil, domainerrors.ErrSessionCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Session opened",
		slog.String("userID", session.User.ID),
		slog.String("role", session.User.Role.String()),
		slog.String("sessionID", session.ID.String()),
	)

	return &usecase.AuthOutput{Token: token, ExpiresAt: session.ExpiresAt, User: result.User}, nil
}

// evictOldestSessions makes room for one more session when the per-user limit is reached.
func (srv *authService) evictOldestSessions(ctx context.Context, sessionRepo repository.SessionRepository, userID string) error {
	if srv.maxActiveSessions <= 0 {
		return nil
	}

	sessions, err := sessionRepo.FindSessionsByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	// Sessions are ordered newest first.
	for i := srv.maxActiveSessions - 1; i < len(sessions); i++ {
		if err := sessionRepo.DeleteSession(ctx, sessions[i].ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "failed to evict session")
		}
		srv.log(ctx).Debug("Evicted session over limit", slog.String("userID", userID), slog.String("sessionID", sessions[i].ID.String()))
	}

	return nil
}

// Logout ends the given session. Ending an already ended session is not an error.
func (srv *authService) Logout(ctx context.Context, session *entity.Session) error {
	if err := srv.sessionRepo.DeleteSession(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Session closed", slog.String("sessionID", session.ID.String()))

	return nil
}

// Authenticate resolves a bearer token into its stored session and records the activity.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrSessionExpired
		}

		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	session, err := srv.sessionRepo.FindSessionByID(ctx, claims.SessionID)
	switch {
	case errors.Is(err, repository.ErrSessionExpired):
		return nil, domainerrors.ErrSessionExpired
	case errors.Is(err, repository.ErrSessionNotFound):
		return nil, domainerrors.ErrUnauthorized.WrapMessage("session has been revoked")
	case err != nil:
		return nil, errors.Wrap(err, "failed to load session")
	}

	now := srv.now()
	if err := srv.sessionRepo.TouchSession(ctx, session.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to record session activity", slog.String("sessionID", session.ID.String()), slog.Any("error", err))
	} else {
		session.LastSeenAt = now
	}

	return session, nil
}

// CurrentUser reloads the account upstream and refreshes the stored snapshot when it changed.
func (srv *authService) CurrentUser(ctx context.Context, session *entity.Session) (*entity.User, error) {
	user, err := srv.api.Me(ctx, session.UpstreamToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	if user.Name != session.User.Name || user.Email != session.User.Email || user.Role != session.User.Role {
		if err := srv.sessionRepo.UpdateSessionUser(ctx, user); err != nil {
			srv.log(ctx).Warn("Failed to refresh session user", slog.String("userID", user.ID), slog.Any("error", err))
		}
	}

	return user, nil
}

// UpdateProfile checks the profile form and saves it upstream.
func (srv *authService) UpdateProfile(ctx context.Context, session *entity.Session, draft entity.ProfileDraft) (*entity.User, error) {
	if errs := validation.ValidateProfile(draft); !errs.Valid() {
		return nil, domainerrors.NewFieldValidationError(errs)
	}

	user, err := srv.api.UpdateProfile(ctx, session.UpstreamToken, draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	if err := srv.sessionRepo.UpdateSessionUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to refresh session user")
	}

	return user, nil
}

// ChangePassword checks the password form, changes it upstream and ends every session of the user.
func (srv *authService) ChangePassword(ctx context.Context, session *entity.Session, draft entity.PasswordChangeDraft) error {
	if errs := validation.ValidatePasswordChange(draft); !errs.Valid() {
		return domainerrors.NewFieldValidationError(errs)
	}

	payload := service.PasswordChangePayload{
		CurrentPassword: draft.CurrentPassword,
		NewPassword:     draft.NewPassword,
	}
	if err := srv.api.ChangePassword(ctx, session.UpstreamToken, payload); err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	if err := srv.sessionRepo.DeleteSessionsByUserID(ctx, session.User.ID); err != nil {
		return errors.Wrap(err, "failed to end sessions after password change")
	}

	srv.log(ctx).Info("Password changed, sessions ended", slog.String("userID", session.User.ID))

	return nil
}
