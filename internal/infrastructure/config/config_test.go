package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LAUNCH_SECRET", "s3cret")
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "DATABASE_PATH", "LRS_ENDPOINT", "LRS_API_KEY",
		"LRS_API_SECRET", "LRS_TIMEOUT", "LRS_STATEMENT_LIMIT", "APP_TIMEZONE", "CORS_ORIGIN",
	} {
		t.Setenv(k, "")
	}

	cfg := config.Load()
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "xapi.db", cfg.DatabasePath)
	assert.Equal(t, "http://localhost:8081/xapi", cfg.LRSEndpoint)
	assert.Equal(t, 30*time.Second, cfg.LRSTimeout)
	assert.Equal(t, 100, cfg.LRSStatementLimit)
	assert.Equal(t, "America/New_York", cfg.Timezone.String())
	assert.Equal(t, []byte("s3cret"), cfg.LaunchSecret)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LAUNCH_SECRET", "s3cret")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("LRS_ENDPOINT", "https://lrs.example.edu/xapi/")
	t.Setenv("LRS_TIMEOUT", "5s")
	t.Setenv("LRS_STATEMENT_LIMIT", "250")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "https://lrs.example.edu/xapi/", cfg.LRSEndpoint)
	assert.Equal(t, 5*time.Second, cfg.LRSTimeout)
	assert.Equal(t, 250, cfg.LRSStatementLimit)
	assert.Equal(t, time.UTC, cfg.Timezone)
}

func TestLoadReport_NoLaunchSecret(t *testing.T) {
	t.Setenv("LAUNCH_SECRET", "")
	t.Setenv("DATABASE_PATH", "/tmp/course.db")

	cfg := config.LoadReport()
	assert.Equal(t, "/tmp/course.db", cfg.DatabasePath)
	assert.Empty(t, cfg.LaunchSecret)
}
