package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Equilibra", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Catalog.Source)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.AI.Enabled)
	assert.True(t, cfg.Monitoring.EnableMetrics)
	assert.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
catalog:
  source: database
database:
  path: /tmp/test.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "database", cfg.Catalog.Source)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "Equilibra", cfg.App.Name, "defaults still apply")
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("EQUILIBRA_SERVER_PORT", "7070")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestValidateProductionRequiresJWTSecret(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.App.Environment = "production"
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidateCatalogSource(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Catalog.Source = "ftp"
	assert.Error(t, cfg.Validate())

	cfg.Catalog.Source = "database"
	assert.NoError(t, cfg.Validate())
}

func TestRedisAddr(t *testing.T) {
	cfg := Config{Redis: RedisConfig{Host: "cache.internal", Port: 6380}}
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
}
