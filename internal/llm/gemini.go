package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// geminiClient implements Client for Google Gemini models.
type geminiClient struct {
	client *genai.Client
	config *Config
}

func newGeminiClient(ctx context.Context, config *Config, apiKey string) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{client: client, config: config}, nil
}

func (c *geminiClient) model(system string) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.config.ResolvedModel())
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(maxOutputTokens)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	return model
}

// GenerateContent generates text from a system/user instruction pair.
func (c *geminiClient) GenerateContent(ctx context.Context, system, user string) (string, error) {
	resp, err := c.model(system).GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", c.wrapError(err)
	}

	return extractText(resp)
}

// GenerateJSON generates JSON output, asking the model for a JSON MIME type
// and stripping any markdown fencing it adds anyway.
func (c *geminiClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	model := c.model(system)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", c.wrapError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return StripJSONFence(text), nil
}

func (c *geminiClient) Provider() Provider {
	return ProviderGemini
}

func (c *geminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *geminiClient) wrapError(err error) error {
	var apierr *googleapi.Error
	if errors.As(err, &apierr) {
		return &APIError{
			Provider:   ProviderGemini,
			StatusCode: apierr.Code,
			Message:    apierr.Message,
			Cause:      err,
		}
	}
	return &APIError{Provider: ProviderGemini, Message: err.Error(), Cause: err}
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &APIError{Provider: ProviderGemini, Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &APIError{Provider: ProviderGemini, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &APIError{Provider: ProviderGemini, Message: "no text parts in response"}
	}

	return strings.TrimSpace(strings.Join(parts, "")), nil
}
