package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env: test
auth:
  secret: "0123456789abcdef0123456789abcdef"
backend:
  base_url: http://localhost:4000/api
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "tripdash-web", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "tripdash.session", cfg.Auth.CookieName)

	assert.Equal(t, []string{"/dashboard"}, cfg.Gate.Matcher)
	assert.Equal(t, []string{"/dashboard/users"}, cfg.Gate.AdminPrefixes)
	assert.Equal(t, []string{"/dashboard/events/host", "/dashboard/subscription"}, cfg.Gate.UserPrefixes)
	assert.Equal(t, "/login", cfg.Gate.LoginPath)
	assert.Equal(t, "/dashboard", cfg.Gate.FallbackPath)
	assert.Equal(t, "callbackUrl", cfg.Gate.CallbackParam)

	require.NotNil(t, cfg.Redis)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUTH_SECRET", "fedcba9876543210fedcba9876543210")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "fedcba9876543210fedcba9876543210", cfg.Auth.Secret)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "short secret",
			body:  "auth:\n  secret: short\nbackend:\n  base_url: http://localhost:4000\n",
			field: "Config.Auth.Secret",
		},
		{
			name:  "missing backend",
			body:  "auth:\n  secret: \"0123456789abcdef0123456789abcdef\"\n",
			field: "Config.Backend",
		},
		{
			name:  "relative login path",
			body:  sampleConfig + "gate:\n  login_path: login\n",
			field: "Config.Gate.LoginPath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "read config")
}
