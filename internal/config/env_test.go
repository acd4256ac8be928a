package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("APP_VOCABULARY", "extended")
	t.Setenv("APP_SUPERVISOR_PIN_HASH", "$2a$10$hash")
	t.Setenv("APP_VERSION", "1.4.0")
	t.Setenv("STORAGE_DB_DSN", "sqlite:///var/lib/fireaudit.db")
	t.Setenv("SERVER_ADDRESS", "localhost:8081")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "15s")
	t.Setenv("SERVER_RATE_LIMIT", "30")
	t.Setenv("SERVER_CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("TELEMETRY_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("TELEMETRY_SERVICE_NAME", "fireaudit-test")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "extended", cfg.App.Vocabulary)
	assert.Equal(t, "$2a$10$hash", cfg.App.SupervisorPINHash)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "sqlite:///var/lib/fireaudit.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30, cfg.Server.RateLimit)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "fireaudit-test", cfg.Telemetry.ServiceName)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_NormalisesNames(t *testing.T) {
	t.Setenv("APP_VOCABULARY", " Extended ")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STORAGE_DB_DSN", " memory\n")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "extended", cfg.App.Vocabulary)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Storage.DB.DSN)
}
