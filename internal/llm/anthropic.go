package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicClient implements Client for Anthropic Claude models.
type anthropicClient struct {
	client anthropic.Client
	config *Config
}

func newAnthropicClient(config *Config, apiKey string) *anthropicClient {
	return &anthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		config: config,
	}
}

// GenerateContent generates text using the messages API.
func (c *anthropicClient) GenerateContent(ctx context.Context, system, user string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.ResolvedModel()),
		MaxTokens: maxOutputTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		Temperature: anthropic.Float(generationTemperature),
	})
	if err != nil {
		return "", c.wrapError(err)
	}

	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			return strings.TrimSpace(text.Text), nil
		}
	}

	return "", &APIError{Provider: ProviderAnthropic, Message: "no text block in response"}
}

// GenerateJSON generates text and strips markdown code fencing.
func (c *anthropicClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	text, err := c.GenerateContent(ctx, system, user)
	if err != nil {
		return "", err
	}
	return StripJSONFence(text), nil
}

func (c *anthropicClient) Provider() Provider {
	return ProviderAnthropic
}

func (c *anthropicClient) Close() error {
	return nil
}

func (c *anthropicClient) wrapError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return &APIError{
			Provider:   ProviderAnthropic,
			StatusCode: apierr.StatusCode,
			Message:    apierr.Error(),
			Cause:      err,
		}
	}
	return &APIError{Provider: ProviderAnthropic, Message: err.Error(), Cause: err}
}
