package config_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-payments-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.NotZero(t, cfg.Server.ReadTimeout)
	assert.NotZero(t, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PAYMENTS_SERVER__PORT", "8080")
	t.Setenv("PAYMENTS_LOGGER__LEVEL", "debug")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		logger := config.LoggerConfig{Level: level}.NewLogger()
		assert.NotNil(t, logger, level)
	}
}
