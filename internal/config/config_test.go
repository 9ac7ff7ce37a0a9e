package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "admin")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "EventBookingSystem")
}

func TestLoadReadsBundle(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_TRUST_CERT", "true")

	cfg := Load()
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPass)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "EventBookingSystem", cfg.DBName)
	assert.True(t, cfg.DBTrustCert)
}

func TestLoadOptionalDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_TRUST_CERT", "")

	cfg := Load()
	assert.Empty(t, cfg.DBPass)
	assert.False(t, cfg.DBTrustCert)
}
