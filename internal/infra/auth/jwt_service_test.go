package auth

import (
	"testing"
	"time"

	"inventory/config"
	"inventory/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: 2 * time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func newTestSession(expiresAt time.Time) *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		User:      entity.User{ID: "665f1c2e9b1e8a0012345678", Role: entity.RoleStaff},
		ExpiresAt: expiresAt,
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.GetSessionDuration())

	session := newTestSession(time.Now().Add(time.Hour))
	token, err := svc.GenerateSessionToken(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claims.SessionID)
	assert.Equal(t, "665f1c2e9b1e8a0012345678", claims.UserID)
	assert.Equal(t, entity.RoleStaff, claims.Role)
	assert.Equal(t, "session", claims.Type)
	assert.Equal(t, session.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token, err := svc.GenerateSessionToken(newTestSession(time.Now().Add(-time.Minute)))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("another_secret_key_that_is_also_long"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token, err := issuer.GenerateSessionToken(newTestSession(time.Now().Add(time.Hour)))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user",
		"sid":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected token type")
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt session secret must be provided")
}

func TestJWTService_RequiresSession(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	_, err = svc.GenerateSessionToken(nil)
	assert.Error(t, err)
}
