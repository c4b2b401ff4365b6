package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Ollama.BaseURL)
	assert.Equal(t, "data/startup_data.csv", cfg.Data.CSVPath)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	content := `
server:
  port: 9090
  host: 127.0.0.1
data:
  csv_path: /tmp/custom.csv
cache:
  driver: redis
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "/tmp/custom.csv", cfg.Data.CSVPath)
	assert.Equal(t, "redis", cfg.Cache.Driver)

	// Untouched sections keep their defaults.
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.OpenAI.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OLLAMA_MODEL", "llama3")
	t.Setenv("STARTUP_CSV_PATH", "/data/export.csv")
	t.Setenv("REDIS_URL", "redis://cache.internal:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "llama3", cfg.LLM.Ollama.Model)
	assert.Equal(t, "/data/export.csv", cfg.Data.CSVPath)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache.internal:6379", cfg.Cache.Redis.Addr)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Cache.Driver = "memcached"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Data.CSVPath = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LLM.Ollama.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
