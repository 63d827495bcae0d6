package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "enrols", cfg.Database.DBName)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, "91", cfg.Phone.DefaultCallingCode)
	assert.True(t, cfg.SMS.DryRun)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("SMS_DRY_RUN", "false")
	t.Setenv("PHONE_DEFAULT_CALLING_CODE", "1")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessExpiry)
	assert.False(t, cfg.SMS.DryRun)
	assert.Equal(t, "1", cfg.Phone.DefaultCallingCode)
}

func TestLoad_BadEnvValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")
	t.Setenv("SMS_DRY_RUN", "not-a-bool")

	cfg := Load()

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.True(t, cfg.SMS.DryRun)
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "enrols", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/enrols?sslmode=disable", c.URL())
}
