package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	yamlData := `
log:
  error_file: /var/log/address.log
parser:
  strict_keywords: true
  match_timeout: 250ms
batch:
  workers: 8
server:
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o644))
	t.Setenv("WEB_PORT", "9100")
	t.Setenv("ADDRESS_WORKERS", "0")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/address.log", cfg.Log.ErrorFile)
	assert.True(t, cfg.Parser.StrictKeywords)
	assert.Equal(t, 250*time.Millisecond, cfg.Parser.MatchTimeout)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 1, cfg.Batch.Workers)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADDRESS_LOG_LEVEL=debug\n# comment\nAPI_KEY=secret\n"), 0o644))
	t.Setenv("API_KEY", "from-env")
	os.Unsetenv("ADDRESS_LOG_LEVEL")
	t.Cleanup(func() { os.Unsetenv("ADDRESS_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.Server.APIKey)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	t.Setenv("TEST_INT", "nope")
	t.Setenv("TEST_DURATION", "2s")

	assert.True(t, GetEnvBool("TEST_BOOL", false))
	assert.Equal(t, 7, GetEnvInt("TEST_INT", 7))
	assert.Equal(t, 2*time.Second, GetEnvDuration("TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_KEY", "fallback"))
}
