// internal/config/config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("WELLS_API_BASE", "")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 20*time.Second, cfg.WellsAPI.Timeout)
	assert.NotEmpty(t, cfg.Auth.JWTSecret, "dev secret diisi otomatis")
	assert.False(t, cfg.RemoteEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_ACCESS_TTL", "5m")
	t.Setenv("WELLS_API_BASE", "http://wells.local:8003/")
	t.Setenv("WELLS_API_TIMEOUT", "bogus")
	t.Setenv("MYSQL_MAX_OPEN_CONNS", "42")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, "http://wells.local:8003", cfg.WellsAPI.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.WellsAPI.Timeout, "durasi invalid jatuh ke default")
	assert.Equal(t, 42, cfg.MySQL.MaxOpen)
	assert.True(t, cfg.RemoteEnabled())
}

func TestValidateRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}
