package inventoryapi

import (
	"context"
	"net/http"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
)

func (c *Client) Login(ctx context.Context, creds entity.CredentialDraft) (*entity.AuthResult, error) {
	env, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: creds, resource: resourceAuth})
	if err != nil {
		return nil, err
	}

	return authResult(env)
}

// Register creates the account upstream. The payload never carries the confirmation field.
func (c *Client) Register(ctx context.Context, payload service.RegistrationPayload) (*entity.AuthResult, error) {
	env, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: payload, resource: resourceAccount})
	if err != nil {
		return nil, err
	}

	return authResult(env)
}

func (c *Client) Me(ctx context.Context, token string) (*entity.User, error) {
	env, err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me", token: token, resource: resourceAccount})
	if err != nil {
		return nil, err
	}

	return userResult(env)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, profile entity.ProfileDraft) (*entity.User, error) {
	env, err := c.do(ctx, call{method: http.MethodPut, path: "/auth/profile", token: token, body: profile, resource: resourceAccount})
	if err != nil {
		return nil, err
	}

	return userResult(env)
}

func (c *Client) ChangePassword(ctx context.Context, token string, payload service.PasswordChangePayload) error {
	_, err := c.do(ctx, call{method: http.MethodPut, path: "/auth/password", token: token, body: payload, resource: resourceAccount})

	return err
}

func authResult(env *envelope) (*entity.AuthResult, error) {
	dto := authDTO{Token: env.Token, User: env.User}
	if dto.Token == "" {
		if err := decodeData(env, &dto); err != nil {
			return nil, err
		}
	}
	if dto.Token == "" || dto.User == nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("upstream auth response missing token or user")
	}

	return &entity.AuthResult{Token: dto.Token, User: dto.User.toEntity()}, nil
}

func userResult(env *envelope) (*entity.User, error) {
	if env.User != nil {
		return env.User.toEntity(), nil
	}

	var dto userDTO
	if err := decodeData(env, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}
