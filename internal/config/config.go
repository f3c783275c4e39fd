// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haruto/threads-studio/internal/llm"
)

// Config represents the application configuration. Values can come from a
// JSON file, environment variables, or CLI flags; flags win over the file,
// and API keys are environment-only.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generation backend
	Provider string `json:"provider,omitempty"` // openai, anthropic or google
	Model    string `json:"model,omitempty"`    // override of the provider default model

	// Threads publishing
	ThreadsAccessToken string `json:"threads_access_token,omitempty"`
	ThreadsUserID      string `json:"threads_user_id,omitempty"`

	// Scraping
	UseBrowser bool `json:"use_browser,omitempty"` // headless browser fallback for SPA pages
}

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables alone.
func FromEnv() *Config {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Provider:           os.Getenv("LLM_PROVIDER"),
		Model:              os.Getenv("LLM_MODEL"),
		ThreadsAccessToken: os.Getenv("THREADS_ACCESS_TOKEN"),
		ThreadsUserID:      os.Getenv("THREADS_USER_ID"),
	}
	if port := os.Getenv("PORT"); port != "" {
		_, _ = fmt.Sscanf(port, "%d", &cfg.Port)
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}

	if c.Provider != "" {
		switch llm.Provider(c.Provider) {
		case llm.ProviderOpenAI, llm.ProviderAnthropic, llm.ProviderGemini:
		default:
			return fmt.Errorf("config error: unknown provider %q", c.Provider)
		}
	}

	// Publishing needs both halves of the credential pair or neither.
	if (c.ThreadsAccessToken == "") != (c.ThreadsUserID == "") {
		return fmt.Errorf("config error: threads_access_token and threads_user_id must be set together")
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to layer the config file under environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ThreadsAccessToken == "" {
		result.ThreadsAccessToken = defaults.ThreadsAccessToken
	}
	if result.ThreadsUserID == "" {
		result.ThreadsUserID = defaults.ThreadsUserID
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig resolves the generation backend settings.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Provider != "" {
		cfg.Provider = llm.Provider(c.Provider)
	}
	if c.Model != "" {
		cfg.Model = c.Model
	}
	return cfg
}
