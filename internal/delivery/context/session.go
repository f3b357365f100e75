package context

import (
	"context"
	"log/slog"

	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the authenticated console session.
const KeySession ContextKey = "session"

// SetSession stores the authenticated session on the echo.Context and its request context.
// The request logger, if any, is tagged with the user so later log lines need not repeat it.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)

	ctx := WithSession(c.Request().Context(), session)
	if logger := GetLogger(ctx); logger != nil && session != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("user_id", session.User.ID),
			slog.String("role", session.User.Role.String()),
		))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetSession returns the session set by the auth middleware.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// WithSession returns a new context carrying the session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// SessionFromContext extracts the session from a standard context.Context.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(KeySession).(*entity.Session)

	return session, ok && session != nil
}
