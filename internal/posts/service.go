// Package posts manages the GeneratedPost lifecycle from draft to published,
// including scheduling, publishing through the Threads API and recording
// real-world performance.
package posts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haruto/threads-studio/internal/types"
)

// Service errors. InvalidTransitionError carries the states involved; the
// sentinels cover the remaining precondition failures.
var (
	ErrNotFound        = errors.New("post not found")
	ErrNotEditable     = errors.New("post content can no longer be edited")
	ErrMissingSchedule = errors.New("a scheduled time is required")
	ErrNotPosted       = errors.New("performance can only be recorded for posted posts")
	ErrEmptyContent    = errors.New("post content is required")
	ErrNoPublisher     = errors.New("no publishing client is configured")
)

// InvalidTransitionError reports a lifecycle move the state machine forbids.
type InvalidTransitionError struct {
	From types.PostStatus
	To   types.PostStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move post from %s to %s", e.From, e.To)
}

// Store is the persistence surface the service needs.
type Store interface {
	InsertGeneratedPost(ctx context.Context, post *types.GeneratedPost) error
	GetGeneratedPost(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error)
	UpdateGeneratedPost(ctx context.Context, post *types.GeneratedPost) error
	DeleteGeneratedPost(ctx context.Context, id uuid.UUID) error
	ListGeneratedPosts(ctx context.Context) ([]types.GeneratedPost, error)
}

// Publisher pushes finished content to Threads and returns the remote post
// id. The threads package provides the production implementation.
type Publisher interface {
	Publish(ctx context.Context, content string) (string, error)
}

// CreateInput is the caller-supplied portion of a new post.
type CreateInput struct {
	Content          string           `json:"content" validate:"required"`
	Type             types.PostType   `json:"type" validate:"omitempty,oneof=ai template"`
	TemplateID       string           `json:"templateId"`
	ReferencePostIDs []uuid.UUID      `json:"referencePostIds"`
	Status           types.PostStatus `json:"status" validate:"omitempty,oneof=draft saved"`
}

// PerformanceInput carries the metrics observed after real-world posting.
type PerformanceInput struct {
	Reach          int      `json:"reach" validate:"min=0"`
	Impressions    int      `json:"impressions" validate:"min=0"`
	Likes          int      `json:"likes" validate:"min=0"`
	Comments       int      `json:"comments" validate:"min=0"`
	Shares         int      `json:"shares" validate:"min=0"`
	Saves          int      `json:"saves" validate:"min=0"`
	EngagementRate float64  `json:"engagementRate" validate:"min=0"`
	ProfileVisits  *int     `json:"profileVisits" validate:"omitempty,min=0"`
	Follows        *int     `json:"follows" validate:"omitempty,min=0"`
}

// Service implements the post lifecycle over a Store and an optional
// Publisher.
type Service struct {
	store     Store
	publisher Publisher
	now       func() time.Time
}

// NewService builds a post service. The publisher may be nil when no
// Threads credentials are configured; Publish then fails with
// ErrNoPublisher while the rest of the lifecycle keeps working.
func NewService(store Store, publisher Publisher) *Service {
	return &Service{store: store, publisher: publisher, now: time.Now}
}

// Create stores a new post. New posts start as drafts unless the caller
// explicitly saves them.
func (s *Service) Create(ctx context.Context, input CreateInput) (*types.GeneratedPost, error) {
	if input.Content == "" {
		return nil, ErrEmptyContent
	}

	postType := input.Type
	if postType == "" {
		postType = types.PostTypeAI
	}
	status := input.Status
	if status == "" {
		status = types.StatusDraft
	}

	now := s.now().UTC()
	post := &types.GeneratedPost{
		ID:               uuid.New(),
		Content:          input.Content,
		Type:             postType,
		TemplateID:       input.TemplateID,
		ReferencePostIDs: input.ReferencePostIDs,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.InsertGeneratedPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store post: %w", err)
	}
	return post, nil
}

// Get fetches a single post.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error) {
	post, err := s.store.GetGeneratedPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// List returns all posts, newest first. Ordering comes from the store.
func (s *Service) List(ctx context.Context) ([]types.GeneratedPost, error) {
	posts, err := s.store.ListGeneratedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// UpdateContent rewrites the post body. Only drafts and saved posts are
// editable; scheduled, posted and failed posts must change state first.
func (s *Service) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*types.GeneratedPost, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Status.IsEditable() {
		return nil, ErrNotEditable
	}

	post.Content = content
	post.UpdatedAt = s.now().UTC()
	if err := s.store.UpdateGeneratedPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// SetStatus moves a post to the given lifecycle state, enforcing the state
// machine. Use Schedule, MarkPosted and MarkFailed for moves that carry
// extra data.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, next types.PostStatus) (*types.GeneratedPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(post, next); err != nil {
		return nil, err
	}

	if err := s.store.UpdateGeneratedPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Schedule moves a post into the scheduled state at the given time.
func (s *Service) Schedule(ctx context.Context, id uuid.UUID, at time.Time) (*types.GeneratedPost, error) {
	if at.IsZero() {
		return nil, ErrMissingSchedule
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(post, types.StatusScheduled); err != nil {
		return nil, err
	}

	at = at.UTC()
	post.ScheduledAt = &at
	if err := s.store.UpdateGeneratedPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// MarkPosted records a successful publish. The Threads post id may be empty
// when the post went out through another channel.
func (s *Service) MarkPosted(ctx context.Context, id uuid.UUID, threadsPostID string) (*types.GeneratedPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(post, types.StatusPosted); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post.PostedAt = &now
	post.ThreadsPostID = threadsPostID
	if err := s.store.UpdateGeneratedPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// MarkFailed records a failed publish attempt. The post can later be
// rescheduled or taken back to draft.
func (s *Service) MarkFailed(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error) {
	return s.SetStatus(ctx, id, types.StatusFailed)
}

// Publish pushes a scheduled post to Threads right now. On success the post
// becomes posted with the remote id attached; on a publish error the post
// is marked failed and the publish error is returned.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error) {
	if s.publisher == nil {
		return nil, ErrNoPublisher
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Status.CanTransitionTo(types.StatusPosted) {
		return nil, &InvalidTransitionError{From: post.Status, To: types.StatusPosted}
	}

	remoteID, err := s.publisher.Publish(ctx, post.Content)
	if err != nil {
		if _, markErr := s.MarkFailed(ctx, id); markErr != nil {
			return nil, errors.Join(err, markErr)
		}
		return nil, fmt.Errorf("failed to publish post: %w", err)
	}

	return s.MarkPosted(ctx, id, remoteID)
}

// RecordPerformance attaches observed metrics to a posted post. Recording
// again overwrites the previous metrics; the post keeps a single
// performance record.
func (s *Service) RecordPerformance(ctx context.Context, id uuid.UUID, input PerformanceInput) (*types.GeneratedPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Status != types.StatusPosted {
		return nil, ErrNotPosted
	}

	perfID := uuid.New()
	if post.Performance != nil {
		perfID = post.Performance.ID
	}
	post.Performance = &types.PostPerformance{
		ID:             perfID,
		PostID:         post.ID,
		RecordedAt:     s.now().UTC(),
		Reach:          input.Reach,
		Impressions:    input.Impressions,
		Likes:          input.Likes,
		Comments:       input.Comments,
		Shares:         input.Shares,
		Saves:          input.Saves,
		EngagementRate: input.EngagementRate,
		ProfileVisits:  input.ProfileVisits,
		Follows:        input.Follows,
	}
	post.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateGeneratedPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Delete removes a post. Deletion is allowed from any state.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteGeneratedPost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *Service) transition(post *types.GeneratedPost, next types.PostStatus) error {
	if !post.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{From: post.Status, To: next}
	}
	post.Status = next
	post.UpdatedAt = s.now().UTC()
	return nil
}
