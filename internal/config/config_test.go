package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruto/threads-studio/internal/llm"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/threads_studio",
		"provider": "anthropic",
		"model": "claude-3-5-sonnet-20241022",
		"use_browser": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/threads_studio", cfg.DatabaseURL)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "mistral"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_ThreadsCredentialPair(t *testing.T) {
	cfg := &Config{ThreadsAccessToken: "token"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be set together")

	cfg = &Config{ThreadsAccessToken: "token", ThreadsUserID: "user"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: "google"}
	defaults := Config{Port: 9000, Provider: "openai", DatabaseURL: "postgres://localhost/db"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "google", merged.Provider, "explicit value should win over default")
	assert.Equal(t, "postgres://localhost/db", merged.DatabaseURL)
}

func TestMergeWithDefaults_FallbackPort(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/env_db")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("PORT", "3001")

	cfg := FromEnv()

	assert.Equal(t, "postgres://localhost/env_db", cfg.DatabaseURL)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 3001, cfg.Port)
}

func TestLLMConfig_Resolution(t *testing.T) {
	cfg := &Config{Provider: "google", Model: "gemini-1.5-pro"}
	llmCfg := cfg.LLMConfig()

	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, "gemini-1.5-pro", llmCfg.Model)
}

func TestLLMConfig_Defaults(t *testing.T) {
	llmCfg := (&Config{}).LLMConfig()
	assert.Equal(t, llm.ProviderOpenAI, llmCfg.Provider)
	assert.Empty(t, llmCfg.Model)
}
