package middleware

import (
	"strings"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the console bearer token into the current session.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate loads the session named by the bearer token and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		session, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole only lets the listed roles through. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
			}

			if !allowed.Contains(session.Role()) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require one of '"+strings.Join(allowed.ToStrings(), "', '")+"'")
			}

			return next(c)
		}
	}
}
