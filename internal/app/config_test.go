package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, devAuthSecret, cfg.AuthSecret)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("AUTH_SECRET", "super-secret")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "super-secret", cfg.AuthSecret)
	assert.False(t, cfg.SeedDemoData)
}

func TestLoadConfigProdRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("AUTH_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
