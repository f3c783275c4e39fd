// Package generation turns a voice profile, a template and reference posts
// into candidate Threads posts via the configured generation backend.
package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/haruto/threads-studio/internal/llm"
	"github.com/haruto/threads-studio/internal/prompt"
	"github.com/haruto/threads-studio/internal/types"
)

// Input validation errors. These are surfaced to the caller immediately and
// are never retried.
var (
	ErrMissingProfile  = errors.New("a user profile is required for generation")
	ErrMissingTemplate = errors.New("a template structure is required for generation")
	ErrMissingContent  = errors.New("original content is required for a variation")
	ErrEmptyResult     = errors.New("the backend returned an empty post")
)

// Request is the immutable payload a generation call is built from. Batch
// generation issues every call from the same Request value.
type Request struct {
	Profile           types.UserProfile
	TemplateStructure string
	ReferenceTexts    []string
}

// Candidate is one generated post body. NGWordHits lists any forbidden
// words from the profile's tone that appear in the content; the hits are
// advisory and never cause the candidate to be dropped.
type Candidate struct {
	Content    string   `json:"content"`
	NGWordHits []string `json:"ngWordHits,omitempty"`
}

// Service issues generation calls through an llm.Client.
type Service struct {
	client llm.Client
}

// NewService creates a generation service around a backend client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Generate produces a single candidate post for the request.
func (s *Service) Generate(ctx context.Context, req Request) (Candidate, error) {
	if err := validate(req); err != nil {
		return Candidate{}, err
	}

	userPrompt := prompt.BuildGeneration(req.Profile, req.TemplateStructure, req.ReferenceTexts)
	content, err := s.client.GenerateContent(ctx, prompt.GenerationSystem, userPrompt)
	if err != nil {
		return Candidate{}, err
	}

	return s.candidate(content, req.Profile.ToneSettings.NGWords)
}

// GenerateVariation produces an A/B variation of existing content, changing
// only the named dimension.
func (s *Service) GenerateVariation(ctx context.Context, original string, variationType types.VariationType) (Candidate, error) {
	if strings.TrimSpace(original) == "" {
		return Candidate{}, ErrMissingContent
	}

	userPrompt := prompt.BuildVariation(original, variationType)
	content, err := s.client.GenerateContent(ctx, prompt.GenerationSystem, userPrompt)
	if err != nil {
		return Candidate{}, err
	}

	return s.candidate(content, nil)
}

func (s *Service) candidate(content string, ngWords []string) (Candidate, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Candidate{}, ErrEmptyResult
	}
	return Candidate{Content: content, NGWordHits: FindNGWords(content, ngWords)}, nil
}

func validate(req Request) error {
	if req.Profile.Genre == "" && req.Profile.TargetAudience == "" {
		return ErrMissingProfile
	}
	if strings.TrimSpace(req.TemplateStructure) == "" {
		return ErrMissingTemplate
	}
	return nil
}

// FindNGWords returns the forbidden words that occur in content, in the
// order they are configured. The compiled tone already instructs the model
// to avoid them; this check only annotates candidates that slipped through.
func FindNGWords(content string, ngWords []string) []string {
	var hits []string
	for _, word := range ngWords {
		if word == "" {
			continue
		}
		if strings.Contains(content, word) {
			hits = append(hits, word)
		}
	}
	return hits
}
