// Package llm provides the client abstraction over the supported text
// generation providers.
package llm

import "os"

// Provider identifies a generation backend.
type Provider string

// Supported providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "google"
)

// defaultModels maps each provider to the model used when none is
// configured.
var defaultModels = map[Provider]string{
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-sonnet-20241022",
	ProviderGemini:    "gemini-1.5-flash",
}

// providerNames are the display names used in provider-qualified error
// messages.
var providerNames = map[Provider]string{
	ProviderOpenAI:    "OpenAI",
	ProviderAnthropic: "Anthropic",
	ProviderGemini:    "Google AI",
}

// Config selects the provider and model for generation calls.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default provider configuration.
func DefaultConfig() *Config {
	return &Config{Provider: ProviderOpenAI}
}

// ResolvedModel returns the configured model, or the provider default when
// unset.
func (c *Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// DefaultModel returns the default model for a provider.
func DefaultModel(p Provider) string {
	return defaultModels[p]
}

// Name returns the display name of a provider, falling back to the raw
// value for unknown providers.
func Name(p Provider) string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return string(p)
}

// EnvAPIKey returns the API key for a provider from its conventional
// environment variable.
func EnvAPIKey(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case ProviderGemini:
		return os.Getenv("GOOGLE_AI_API_KEY")
	default:
		return ""
	}
}
