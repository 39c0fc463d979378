package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(apiKeyEnv, "secret")
	path := writeConfig(t, `
api:
  port: 9000
tmdb:
  primaryLanguage: it-it
  fallbackLanguage: en-us
  timeout: 3s
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, "secret", cfg.TMDB.APIKey)
	assert.Equal(t, "it-IT", cfg.TMDB.PrimaryLanguage)
	assert.Equal(t, "en-US", cfg.TMDB.FallbackLanguage)
	assert.Equal(t, 3*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
	assert.Equal(t, "./movie/static", cfg.Static.Dir)
}

func TestLoadConfigIgnoresAPIKeyInFile(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	path := writeConfig(t, "tmdb:\n  apiKey: leaked\n")
	_, err := loadConfig(path)
	assert.ErrorContains(t, err, apiKeyEnv)
}

func TestLoadConfigInvalidLanguage(t *testing.T) {
	t.Setenv(apiKeyEnv, "secret")
	path := writeConfig(t, "tmdb:\n  primaryLanguage: \"not a tag\"\n")
	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "tmdb.primaryLanguage")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
