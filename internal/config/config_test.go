package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  address: ":9090"
cors:
  allowed_origin: "http://localhost:5173"
database:
  uri: "mongodb://db:27017"
  name: "fitsphere_test"
jwt:
  secret: "yaml-secret"
  expiration: "2h"
ai:
  provider: "OpenAI"
  api_key: "sk-test"
  timeout: "5s"
log:
  level: "debug"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "http://localhost:5173", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, "fitsphere_test", cfg.Database.Name)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, AIProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "fitsphere", cfg.S3.BucketName)
	assert.True(t, cfg.S3.UseSSL)
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, AIProviderNone, cfg.AI.Provider)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("S3_BUCKET_NAME", "snapshots")

	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, AIProviderGemini, cfg.AI.Provider)
	assert.Equal(t, "snapshots", cfg.S3.BucketName)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)
}

func TestLoadConfigValidation(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "log:\n  level: info\n"))
	assert.ErrorContains(t, err, "jwt.secret")

	_, err = LoadConfig(writeConfig(t, "jwt:\n  secret: s\nai:\n  provider: gemini\n"))
	assert.ErrorContains(t, err, "ai.api_key")

	_, err = LoadConfig(writeConfig(t, "jwt:\n  secret: s\nai:\n  provider: claude\n"))
	assert.ErrorContains(t, err, "unknown ai.provider")
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [unterminated"))
	assert.Error(t, err)
}
