// Package handler contains the HTTP handlers of the console API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves the login, registration, profile and session endpoints.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the sign-up form. An empty role falls back to staff.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// ProfileRequest is the profile form.
type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PasswordRequest is the password tab of the profile page.
type PasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResponse is returned after login or registration.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *entity.User `json:"user"`
}

func clientInfo(c echo.Context) entity.ClientInfo {
	return entity.ClientInfo{
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	}
}

// Login handles the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Draft:  entity.CredentialDraft{Email: req.Email, Password: req.Password},
		Client: clientInfo(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{Token: output.Token, ExpiresAt: output.ExpiresAt, User: output.User})
}

// Register handles the sign-up form.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	draft := entity.NewRegistrationDraft()
	draft.Name = req.Name
	draft.Email = req.Email
	draft.Password = req.Password
	draft.ConfirmPassword = req.ConfirmPassword
	if req.Role != "" {
		draft.Role = entity.Role(req.Role)
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{Draft: draft, Client: clientInfo(c)})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, AuthResponse{Token: output.Token, ExpiresAt: output.ExpiresAt, User: output.User})
}

// Logout ends the current session.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	if err := h.authUC.Logout(c.Request().Context(), session); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Me returns the current user, reloaded upstream.
func (h *AuthHandler) Me(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile handles the profile form.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), session, entity.ProfileDraft{Name: req.Name, Email: req.Email})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ChangePassword handles the password form. Every session of the user ends on success.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	err := h.authUC.ChangePassword(c.Request().Context(), session, entity.PasswordChangeDraft{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed, please log in again"})
}

// ListSessions returns the active sessions of the current user.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	sessions, err := h.sessionUC.ActiveSessions(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessions)
}

// RevokeSession ends one of the user's sessions.
func (h *AuthHandler) RevokeSession(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.sessionUC.RevokeSession(c.Request().Context(), session, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"})
}
