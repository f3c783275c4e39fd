// Package research manages the library of captured competitor posts and the
// derived engagement metric that ranking and filtering are built on.
package research

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haruto/threads-studio/internal/engagement"
	"github.com/haruto/threads-studio/internal/types"
)

// DefaultTopLimit is used by Top when the caller does not give a limit.
const DefaultTopLimit = 10

// ErrNotFound is returned when a research post id does not exist.
var ErrNotFound = errors.New("research post not found")

// Store is the persistence surface the service needs. The db package
// provides the Postgres implementation.
type Store interface {
	InsertResearchPost(ctx context.Context, post *types.ResearchPost) error
	GetResearchPost(ctx context.Context, id uuid.UUID) (*types.ResearchPost, error)
	UpdateResearchPost(ctx context.Context, post *types.ResearchPost) error
	DeleteResearchPost(ctx context.Context, id uuid.UUID) error
	ListResearchPosts(ctx context.Context) ([]types.ResearchPost, error)
}

// CreateInput is the caller-supplied portion of a new research post. The
// engagement rate is always derived, never accepted from the caller.
type CreateInput struct {
	Content         string           `json:"content" validate:"required"`
	SourceType      types.SourceType `json:"sourceType" validate:"omitempty,oneof=manual url"`
	SourceURL       string           `json:"sourceUrl"`
	AuthorName      string           `json:"authorName"`
	AuthorFollowers *int             `json:"authorFollowers" validate:"omitempty,min=0"`
	PostedAt        *time.Time       `json:"postedAt"`
	Likes           *int             `json:"likes" validate:"omitempty,min=0"`
	Comments        *int             `json:"comments" validate:"omitempty,min=0"`
	Shares          *int             `json:"shares" validate:"omitempty,min=0"`
	Saves           *int             `json:"saves" validate:"omitempty,min=0"`
	Tags            []string         `json:"tags"`
}

// UpdateInput carries a partial update. Nil fields are left as stored; the
// rate is recomputed from the merged record afterwards.
type UpdateInput struct {
	Content         *string    `json:"content"`
	AuthorName      *string    `json:"authorName"`
	AuthorFollowers *int       `json:"authorFollowers" validate:"omitempty,min=0"`
	PostedAt        *time.Time `json:"postedAt"`
	Likes           *int       `json:"likes" validate:"omitempty,min=0"`
	Comments        *int       `json:"comments" validate:"omitempty,min=0"`
	Shares          *int       `json:"shares" validate:"omitempty,min=0"`
	Saves           *int       `json:"saves" validate:"omitempty,min=0"`
	Tags            []string   `json:"tags"`
}

// Service implements research post CRUD plus the ranking and tag views.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService builds a research service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create stores a new research post with a freshly derived engagement rate.
func (s *Service) Create(ctx context.Context, input CreateInput) (*types.ResearchPost, error) {
	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = types.SourceManual
	}

	now := s.now().UTC()
	post := &types.ResearchPost{
		ID:              uuid.New(),
		Content:         input.Content,
		SourceType:      sourceType,
		SourceURL:       input.SourceURL,
		AuthorName:      input.AuthorName,
		AuthorFollowers: input.AuthorFollowers,
		PostedAt:        input.PostedAt,
		Likes:           input.Likes,
		Comments:        input.Comments,
		Shares:          input.Shares,
		Saves:           input.Saves,
		Tags:            normalizeTags(input.Tags),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	engagement.Recompute(post)

	if err := s.store.InsertResearchPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store research post: %w", err)
	}
	return post, nil
}

// Get fetches a single research post.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*types.ResearchPost, error) {
	post, err := s.store.GetResearchPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load research post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Update merges the partial input into the stored record, then recomputes
// the engagement rate on the merged record. Passing only a changed count is
// safe: the remaining counts come from the stored post.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*types.ResearchPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.AuthorName != nil {
		post.AuthorName = *input.AuthorName
	}
	if input.AuthorFollowers != nil {
		post.AuthorFollowers = input.AuthorFollowers
	}
	if input.PostedAt != nil {
		post.PostedAt = input.PostedAt
	}
	if input.Likes != nil {
		post.Likes = input.Likes
	}
	if input.Comments != nil {
		post.Comments = input.Comments
	}
	if input.Shares != nil {
		post.Shares = input.Shares
	}
	if input.Saves != nil {
		post.Saves = input.Saves
	}
	if input.Tags != nil {
		post.Tags = normalizeTags(input.Tags)
	}

	engagement.Recompute(post)
	post.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateResearchPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update research post: %w", err)
	}
	return post, nil
}

// Delete removes a research post. Generated posts that referenced it keep
// their copies of the reference text, so no cascade is needed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteResearchPost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete research post: %w", err)
	}
	return nil
}

// List returns all research posts, newest first.
func (s *Service) List(ctx context.Context) ([]types.ResearchPost, error) {
	posts, err := s.store.ListResearchPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list research posts: %w", err)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// Top returns the highest-engagement posts, best first. Posts whose rate
// could not be computed are excluded rather than treated as zero. A limit
// of 0 or less falls back to DefaultTopLimit.
func (s *Service) Top(ctx context.Context, limit int) ([]types.ResearchPost, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	posts, err := s.store.ListResearchPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list research posts: %w", err)
	}

	ranked := make([]types.ResearchPost, 0, len(posts))
	for _, post := range posts {
		if post.EngagementRate != nil {
			ranked = append(ranked, post)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].EngagementRate > *ranked[j].EngagementRate
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// FilterByTags returns posts carrying at least one of the given tags. An
// empty tag list matches nothing.
func (s *Service) FilterByTags(ctx context.Context, tags []string) ([]types.ResearchPost, error) {
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range normalizeTags(tags) {
		wanted[tag] = struct{}{}
	}
	if len(wanted) == 0 {
		return []types.ResearchPost{}, nil
	}

	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]types.ResearchPost, 0, len(posts))
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := wanted[tag]; ok {
				matched = append(matched, post)
				break
			}
		}
	}
	return matched, nil
}

// Tags returns the distinct tags in use across all research posts, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.store.ListResearchPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list research posts: %w", err)
	}

	seen := make(map[string]struct{})
	for _, post := range posts {
		for _, tag := range post.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// normalizeTags trims whitespace and drops empties and duplicates while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
