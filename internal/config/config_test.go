package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "9090"
  mode: debug

database:
  path: data/test.db

jwt:
  secret: short-secret
  expire_hours: 24

storage:
  type: local
  local_path: %s

redis:
  enabled: false

assistant:
  base_url: https://api.openai.com/v1
  api_key: ""
  model: gpt-4o-mini
  timeout_seconds: 30
`

// viper 是全局状态，每个用例前重置
func writeTestConfig(t *testing.T) string {
	t.Helper()
	viper.Reset()

	dir := t.TempDir()
	content := fmt.Sprintf(testYAML, t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "data/test.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "gpt-4o-mini", cfg.Assistant.Model)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeTestConfig(t)

	t.Setenv("ASSISTANT_API_KEY", "sk-from-env")
	t.Setenv("DATABASE_PATH", "/tmp/override.db")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.Assistant.APIKey)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

// release 模式拒绝过短的 JWT secret
func TestLoadConfigReleaseSecretCheck(t *testing.T) {
	dir := writeTestConfig(t)

	t.Setenv("SERVER_MODE", "release")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
