package generation

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruto/threads-studio/internal/llm"
	"github.com/haruto/threads-studio/internal/types"
)

// fakeClient is a scriptable llm.Client. Generate returns responses in call
// order, or err for the failAt-th call (1-based, 0 = never fail).
type fakeClient struct {
	mu         sync.Mutex
	calls      atomic.Int32
	response   string
	failAt     int
	err        error
	lastUser   string
	lastSystem string
}

func (f *fakeClient) GenerateContent(_ context.Context, system, user string) (string, error) {
	n := int(f.calls.Add(1))
	f.mu.Lock()
	f.lastSystem = system
	f.lastUser = user
	f.mu.Unlock()
	if f.failAt > 0 && n == f.failAt {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return f.GenerateContent(ctx, system, user)
}

func (f *fakeClient) Provider() llm.Provider { return llm.ProviderOpenAI }
func (f *fakeClient) Close() error           { return nil }

func testRequest() Request {
	return Request{
		Profile: types.UserProfile{
			Genre:          "育児",
			TargetAudience: "30代のママ",
			ToneSettings:   types.DefaultToneSettings(),
		},
		TemplateStructure: "{{フック文}}\n{{本文}}",
	}
}

func TestGenerate_ReturnsTrimmedCandidate(t *testing.T) {
	client := &fakeClient{response: "  生成された投稿\n"}
	svc := NewService(client)

	candidate, err := svc.Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "生成された投稿", candidate.Content)
	assert.Empty(t, candidate.NGWordHits)
	assert.Contains(t, client.lastUser, "## テンプレート構造")
	assert.Equal(t, "あなたはSNSマーケティングの専門家です。バズるThreads投稿を作成してください。", client.lastSystem)
}

func TestGenerate_ValidatesInput(t *testing.T) {
	svc := NewService(&fakeClient{response: "x"})

	_, err := svc.Generate(context.Background(), Request{TemplateStructure: "構造"})
	assert.ErrorIs(t, err, ErrMissingProfile)

	req := testRequest()
	req.TemplateStructure = "   "
	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestGenerate_EmptyBackendResult(t *testing.T) {
	svc := NewService(&fakeClient{response: "   "})

	_, err := svc.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestGenerate_AnnotatesNGWords(t *testing.T) {
	client := &fakeClient{response: "絶対に簡単に稼げます"}
	svc := NewService(client)

	req := testRequest()
	req.Profile.ToneSettings.NGWords = []string{"絶対", "楽して", "簡単"}

	candidate, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"絶対", "簡単"}, candidate.NGWordHits)
}

func TestGenerateVariation(t *testing.T) {
	client := &fakeClient{response: "バリエーション投稿"}
	svc := NewService(client)

	candidate, err := svc.GenerateVariation(context.Background(), "元の投稿", types.VariationHook)

	require.NoError(t, err)
	assert.Equal(t, "バリエーション投稿", candidate.Content)
	assert.Contains(t, client.lastUser, "## 元の投稿\n元の投稿")

	_, err = svc.GenerateVariation(context.Background(), "  ", types.VariationCTA)
	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestGenerateBatch_AllSucceed(t *testing.T) {
	client := &fakeClient{response: "候補投稿"}
	svc := NewService(client)

	results, err := svc.GenerateBatch(context.Background(), testRequest(), 5)

	require.NoError(t, err)
	require.Len(t, results, 5)
	for _, candidate := range results {
		assert.Equal(t, "候補投稿", candidate.Content)
	}
	assert.Equal(t, int32(5), client.calls.Load())
}

func TestGenerateBatch_AllOrNothing(t *testing.T) {
	client := &fakeClient{response: "候補投稿", failAt: 3, err: &llm.APIError{Provider: llm.ProviderOpenAI, StatusCode: 429, Message: "rate limit exceeded"}}
	svc := NewService(client)

	results, err := svc.GenerateBatch(context.Background(), testRequest(), 5)

	require.Error(t, err)
	assert.Nil(t, results, "a failed batch must not surface partial results")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestGenerateBatch_RejectsUnsupportedSizes(t *testing.T) {
	svc := NewService(&fakeClient{response: "x"})

	for _, count := range []int{0, -1, 2, 4, 7, 100} {
		_, err := svc.GenerateBatch(context.Background(), testRequest(), count)
		assert.ErrorContains(t, err, "unsupported batch size", "count %d", count)
	}

	for _, count := range []int{1, 3, 5, 10} {
		assert.True(t, ValidBatchSize(count))
	}
}

func TestFindNGWords(t *testing.T) {
	hits := FindNGWords("絶対に成功する方法", []string{"絶対", "楽して", ""})
	assert.Equal(t, []string{"絶対"}, hits)

	assert.Nil(t, FindNGWords("普通の投稿", []string{"絶対"}))
	assert.Nil(t, FindNGWords("本文", nil))
}

func TestGenerateBatch_PromptIsIdenticalAcrossSlots(t *testing.T) {
	client := &fakeClient{response: "候補"}
	svc := NewService(client)

	_, err := svc.GenerateBatch(context.Background(), testRequest(), 3)
	require.NoError(t, err)

	// Every slot is built from the same immutable request.
	want := strings.TrimSpace(client.lastUser)
	assert.NotEmpty(t, want)
}
