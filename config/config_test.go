package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: inventory-console
  log:
    level: info
http:
  port: 8080
upstream:
  baseUrl: http://upstream.local/api
  timeout: 3s
session:
  ttl: 2h
  maxActiveSessions: 3
pubsub:
  provider: local
  localEndpoint: http://localhost:8090/push
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("UPSTREAM_BASEURL", "http://override.local/api")
	t.Setenv("SESSION_MAXACTIVESESSIONS", "7")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "inventory-console", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "http://override.local/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 7, cfg.Session.MaxActiveSessions)
	assert.Equal(t, "local", cfg.PubSub.Provider)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultCleanupInterval, cfg.Session.CleanupInterval)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
	assert.Equal(t, 8090, cfg.PubSub.PushPort)
	assert.Zero(t, cfg.Session.MaxActiveSessions)
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("exports new keys and keeps existing ones", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("INVENTORY_DOTENV_NEW=from-file\nINVENTORY_DOTENV_SET=from-file\n"), 0o600))
		t.Setenv("INVENTORY_DOTENV_SET", "from-shell")
		t.Cleanup(func() { os.Unsetenv("INVENTORY_DOTENV_NEW") })

		require.NoError(t, loadDotEnv(path))

		assert.Equal(t, "from-file", os.Getenv("INVENTORY_DOTENV_NEW"))
		assert.Equal(t, "from-shell", os.Getenv("INVENTORY_DOTENV_SET"))
	})
}
