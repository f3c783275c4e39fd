package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruto/threads-studio/internal/llm"
	"github.com/haruto/threads-studio/internal/types"
)

type fakeClient struct {
	response string
	err      error
	lastUser string
}

func (f *fakeClient) GenerateContent(_ context.Context, _, user string) (string, error) {
	f.lastUser = user
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	text, err := f.GenerateContent(ctx, system, user)
	if err != nil {
		return "", err
	}
	return llm.StripJSONFence(text), nil
}

func (f *fakeClient) Provider() llm.Provider { return llm.ProviderGemini }
func (f *fakeClient) Close() error           { return nil }

func somePosts() []types.ResearchPost {
	likes := 300
	return []types.ResearchPost{
		{Content: "冒頭で驚かせる投稿", Likes: &likes},
		{Content: "問いかけから始まる投稿"},
	}
}

func TestAnalyze_ParsesValidResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"patterns": ["冒頭に数字を使う"],
		"successFactors": ["具体性", "共感"],
		"recommendations": ["問いかけで始める"]
	}`}

	result, err := Analyze(context.Background(), client, somePosts())

	require.NoError(t, err)
	assert.Equal(t, []string{"冒頭に数字を使う"}, result.Patterns)
	assert.Equal(t, []string{"具体性", "共感"}, result.SuccessFactors)
	assert.Equal(t, []string{"問いかけで始める"}, result.Recommendations)
	assert.Contains(t, client.lastUser, "### 投稿1")
}

func TestAnalyze_StripsMarkdownFence(t *testing.T) {
	client := &fakeClient{response: "```json\n{\"patterns\": [], \"successFactors\": [], \"recommendations\": []}\n```"}

	result, err := Analyze(context.Background(), client, somePosts())

	require.NoError(t, err)
	assert.Empty(t, result.Patterns)
}

func TestAnalyze_RejectsEmptyBatch(t *testing.T) {
	_, err := Analyze(context.Background(), &fakeClient{}, nil)
	assert.ErrorIs(t, err, ErrNoPosts)
}

func TestAnalyze_RejectsWrongShape(t *testing.T) {
	client := &fakeClient{response: `{"patterns": "not an array"}`}

	_, err := Analyze(context.Background(), client, somePosts())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Problems)
}

func TestAnalyze_RejectsNonJSON(t *testing.T) {
	client := &fakeClient{response: "分析できませんでした"}

	_, err := Analyze(context.Background(), client, somePosts())
	require.Error(t, err)
}

func TestAnalyze_PropagatesBackendError(t *testing.T) {
	backendErr := &llm.APIError{Provider: llm.ProviderGemini, StatusCode: 503, Message: "service unavailable"}
	client := &fakeClient{err: backendErr}

	_, err := Analyze(context.Background(), client, somePosts())
	assert.ErrorIs(t, err, backendErr)
}
