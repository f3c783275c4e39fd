package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"single-line json fence", "```json{\"a\": 1}```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with language", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"missing closing fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripJSONFence(tt.input))
		})
	}
}

func TestResolvedModel(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI}
	assert.Equal(t, "gpt-4o-mini", cfg.ResolvedModel())

	cfg.Model = "gpt-4o"
	assert.Equal(t, "gpt-4o", cfg.ResolvedModel())

	assert.Equal(t, "claude-3-5-sonnet-20241022", DefaultModel(ProviderAnthropic))
	assert.Equal(t, "gemini-1.5-flash", DefaultModel(ProviderGemini))
}

func TestName(t *testing.T) {
	assert.Equal(t, "OpenAI", Name(ProviderOpenAI))
	assert.Equal(t, "Google AI", Name(ProviderGemini))
	assert.Equal(t, "mystery", Name(Provider("mystery")))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Provider: ProviderOpenAI, StatusCode: 429, Message: "rate limit exceeded"}
	assert.Equal(t, "OpenAI API error (status 429): rate limit exceeded", err.Error())

	err = &APIError{Provider: ProviderAnthropic, Message: "connection refused"}
	assert.Equal(t, "Anthropic API error: connection refused", err.Error())
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewClient(t.Context(), &Config{Provider: ProviderOpenAI}, "")
	assert.ErrorContains(t, err, "API key is not configured")
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(t.Context(), &Config{Provider: Provider("cohere")}, "key")
	assert.ErrorContains(t, err, "unsupported provider")
}
