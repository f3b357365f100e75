// Package inventoryapi is the HTTP client of the upstream inventory REST API.
package inventoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResponseBytes = 4 << 20

// Params defines the dependencies of the client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client implements service.InventoryAPI over net/http.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

var _ service.InventoryAPI = (*Client)(nil)

// New creates the upstream client from configuration.
func New(params Params) (service.InventoryAPI, error) {
	if params.Config.Upstream == nil || params.Config.Upstream.BaseURL == "" {
		return nil, errors.New("upstream base URL must be provided")
	}

	return NewClient(params.Config.Upstream.BaseURL, params.Config.Upstream.Timeout, params.Logger)
}

// NewClient creates a client for baseURL, e.g. "http://localhost:5000/api".
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid upstream base URL %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("upstream base URL %q must be absolute", baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type call struct {
	method   string
	path     string
	token    string
	query    url.Values
	body     any
	resource resource
}

// do performs the call and returns the decoded envelope.
func (c *Client) do(ctx context.Context, in call) (*envelope, error) {
	target := c.baseURL.JoinPath(in.path)
	if len(in.query) > 0 {
		target.RawQuery = in.query.Encode()
	}

	var reader io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return nil, errors.Wrap(err, "encode upstream request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target.String(), reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.token != "" {
		req.Header.Set("Authorization", "Bearer "+in.token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Upstream request failed",
			slog.String("method", in.method),
			slog.String("path", in.path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Upstream request",
		slog.String("method", in.method),
		slog.String("path", in.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("read upstream response")
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				return nil, toAppError(resp.StatusCode, "", in.resource)
			}

			return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("decode upstream response")
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, toAppError(resp.StatusCode, env.Message, in.resource)
	}
	if env.Success != nil && !*env.Success {
		return nil, toAppError(http.StatusBadRequest, env.Message, in.resource)
	}

	return &env, nil
}

func decodeData(env *envelope, out any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return domainerrors.ErrUpstreamUnavailable.WrapMessage("upstream response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domainerrors.ErrUpstreamUnavailable.WrapMessage("decode upstream data: " + err.Error())
	}

	return nil
}
