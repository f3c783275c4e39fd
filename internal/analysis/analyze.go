// Package analysis runs LLM batch analysis over captured research posts and
// validates the structured result before it reaches callers.
package analysis

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/haruto/threads-studio/internal/llm"
	"github.com/haruto/threads-studio/internal/prompt"
	"github.com/haruto/threads-studio/internal/types"
)

//go:embed schema.json
var resultSchema string

// ErrNoPosts is returned when an analysis is requested over an empty batch.
var ErrNoPosts = errors.New("at least one research post is required for analysis")

// analysisSystem frames the model as an analyst rather than a copywriter.
const analysisSystem = "あなたはSNSマーケティングの分析の専門家です。データに基づいて簡潔に分析してください。"

// ValidationError reports an LLM response that parsed as JSON but did not
// match the expected result shape.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("analysis response failed schema validation: %s", strings.Join(e.Problems, "; "))
}

// Analyze asks the backend to identify patterns, success factors and
// recommendations across the given research posts. The raw JSON response is
// checked against the embedded schema, so malformed model output surfaces as
// a typed error instead of a half-filled result.
func Analyze(ctx context.Context, client llm.Client, posts []types.ResearchPost) (*types.AnalysisResult, error) {
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}

	userPrompt := prompt.BuildAnalysis(posts)
	raw, err := client.GenerateJSON(ctx, analysisSystem, userPrompt)
	if err != nil {
		return nil, err
	}

	if err := validateResult(raw); err != nil {
		return nil, err
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	return &result, nil
}

func validateResult(raw string) error {
	schemaLoader := gojsonschema.NewStringLoader(resultSchema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("analysis response is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Problems = append(verr.Problems, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return verr
}
