package llm

import (
	"context"
	"fmt"
)

// Generation parameters shared by all providers. Post generation wants
// variety between candidates, so the temperature is deliberately high.
const (
	generationTemperature = 0.8
	maxOutputTokens       = 1000
)

// Client is an abstraction over generation providers. GenerateContent
// returns the model's text for a system/user instruction pair;
// GenerateJSON additionally strips any markdown fencing so the result can
// be parsed directly.
type Client interface {
	GenerateContent(ctx context.Context, system, user string) (string, error)
	GenerateJSON(ctx context.Context, system, user string) (string, error)
	Provider() Provider
	Close() error
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		apiKey = EnvAPIKey(config.Provider)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is not configured", Name(config.Provider))
	}

	switch config.Provider {
	case ProviderOpenAI:
		return newOpenAIClient(config, apiKey), nil
	case ProviderAnthropic:
		return newAnthropicClient(config, apiKey), nil
	case ProviderGemini:
		return newGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
