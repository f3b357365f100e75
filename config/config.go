package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultUpstreamTimeout    = 10 * time.Second
	defaultSessionTTL         = 24 * time.Hour
	defaultCleanupInterval    = time.Hour
	defaultQRCodeSize         = 256
	defaultPushPort           = 8090
	dotEnvFile                = ".env"
	minSessionSecretLen       = 32
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	// Upstream is the inventory REST API the console fronts
	Upstream *UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Session configuration for console logins
	Session *SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for product labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for low-stock alerts
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UpstreamConfig defines how the console reaches the inventory API
type UpstreamConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines console session limits
type SessionConfig struct {
	TTL               time.Duration `json:"ttl" yaml:"ttl"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	CleanupInterval   time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Port the alert worker listens on for push deliveries
	PushPort int `json:"pushPort" yaml:"pushPort"`
}

// New loads config.yaml with environment overrides, fills defaults and validates the result.
func New() (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Upstream == nil {
		cfg.Upstream = &UpstreamConfig{}
	}
	cfg.Upstream.Timeout = orDefault(cfg.Upstream.Timeout, defaultUpstreamTimeout)

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	cfg.Session.TTL = orDefault(cfg.Session.TTL, defaultSessionTTL)
	cfg.Session.CleanupInterval = orDefault(cfg.Session.CleanupInterval, defaultCleanupInterval)

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	cfg.QRCode.Size = orDefault(cfg.QRCode.Size, defaultQRCodeSize)

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}
	cfg.PubSub.PushPort = orDefault(cfg.PubSub.PushPort, defaultPushPort)
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}

	return v
}

// Validate rejects settings the console cannot run with.
func (c *Config) Validate() error {
	if c.Upstream == nil || c.Upstream.BaseURL == "" {
		return errors.New("upstream.baseUrl is required")
	}
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("upstream.baseUrl %q is not an http(s) URL", c.Upstream.BaseURL)
	}

	if len(c.SecretKey.Session) < minSessionSecretLen && c.Env.Env != "local" {
		return errors.Errorf("secretKey.session must be at least %d characters", minSessionSecretLen)
	}

	if c.PubSub != nil {
		switch c.PubSub.Provider {
		case "", "noop", "local", "google":
		default:
			return errors.Errorf("pubsub.provider %q is not one of noop, local or google", c.PubSub.Provider)
		}
	}

	return nil
}
