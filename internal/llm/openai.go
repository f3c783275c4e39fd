package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIClient implements Client for OpenAI chat models.
type openAIClient struct {
	client openai.Client
	config *Config
}

func newOpenAIClient(config *Config, apiKey string) *openAIClient {
	return &openAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		config: config,
	}
}

// GenerateContent generates text using the chat completions API.
func (c *openAIClient) GenerateContent(ctx context.Context, system, user string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.config.ResolvedModel()),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(generationTemperature),
		MaxTokens:   openai.Int(maxOutputTokens),
	})
	if err != nil {
		return "", c.wrapError(err)
	}

	if len(completion.Choices) == 0 {
		return "", &APIError{Provider: ProviderOpenAI, Message: "empty response"}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// GenerateJSON generates text and strips markdown code fencing.
func (c *openAIClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	text, err := c.GenerateContent(ctx, system, user)
	if err != nil {
		return "", err
	}
	return StripJSONFence(text), nil
}

func (c *openAIClient) Provider() Provider {
	return ProviderOpenAI
}

func (c *openAIClient) Close() error {
	return nil
}

func (c *openAIClient) wrapError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &APIError{
			Provider:   ProviderOpenAI,
			StatusCode: apierr.StatusCode,
			Message:    apierr.Message,
			Cause:      err,
		}
	}
	return &APIError{Provider: ProviderOpenAI, Message: err.Error(), Cause: err}
}
