package config_test

import (
	"testing"
	"time"

	"github.com/myaccountdemo/account_api/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv("PGSQL_URL", "")
	t.Setenv("JWT_SECRET", "")
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	resetEnv(t)
	t.Setenv("JWT_SECRET", "some-secret")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PGSQL_URL")
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	resetEnv(t)
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/accounts")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetEnv(t)
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/accounts")
	t.Setenv("JWT_SECRET", "some-secret")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "MyAccountAPI", cfg.JWTIssuer)
	assert.Equal(t, "MyAccountApp", cfg.JWTAudience)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_InvalidExpiryFallsBackToAnHour(t *testing.T) {
	resetEnv(t)
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/accounts")
	t.Setenv("JWT_SECRET", "some-secret")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_Overrides(t *testing.T) {
	resetEnv(t)
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/accounts")
	t.Setenv("JWT_SECRET", "some-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
}
