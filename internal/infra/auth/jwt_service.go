// Package auth provides the console's session token implementation.
package auth

import (
	"time"

	"inventory/config"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionTokenType = "session"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string
	sessionTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
		now:        time.Now,
	}, nil
}

// GenerateSessionToken signs a token that expires together with the session.
func (s *jwtService) GenerateSessionToken(session *entity.Session) (string, error) {
	if session == nil || session.ID == uuid.Nil {
		return "", errors.New("session is required")
	}

	claims := jwt.MapClaims{
		"sub":  session.User.ID,
		"sid":  session.ID.String(),
		"role": string(session.User.Role),
		"iat":  s.now().Unix(),
		"exp":  session.ExpiresAt.Unix(),
		"type": sessionTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != sessionTokenType {
		return nil, errors.Errorf("unexpected token type: %q", tokenType)
	}

	sid, _ := mapClaims["sid"].(string)
	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session id claim")
	}

	subject, _ := mapClaims.GetSubject()
	role, _ := mapClaims["role"].(string)
	expiresAt, _ := mapClaims.GetExpirationTime()
	issuedAt, _ := mapClaims.GetIssuedAt()

	return &service.Claims{
		SessionID: sessionID,
		UserID:    subject,
		Role:      entity.Role(role),
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: expiresAt,
			IssuedAt:  issuedAt,
		},
	}, nil
}

// GetSessionDuration returns the configured session lifetime.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}
