package types

import (
	"time"

	"github.com/google/uuid"
)

// PostType records whether a post body came from AI generation or straight
// from a template example.
type PostType string

// PostType values.
const (
	PostTypeAI       PostType = "ai"
	PostTypeTemplate PostType = "template"
)

// PostStatus is the lifecycle state of a GeneratedPost.
type PostStatus string

// PostStatus values.
const (
	StatusDraft     PostStatus = "draft"
	StatusSaved     PostStatus = "saved"
	StatusScheduled PostStatus = "scheduled"
	StatusPosted    PostStatus = "posted"
	StatusFailed    PostStatus = "failed"
)

// validTransitions is the post lifecycle: drafts and saved posts can be
// edited and scheduled, a scheduled post either publishes or fails, and a
// failed post can be taken back to draft or rescheduled. Posted is terminal;
// a published post never returns to an earlier state.
var validTransitions = map[PostStatus][]PostStatus{
	StatusDraft:     {StatusDraft, StatusSaved, StatusScheduled},
	StatusSaved:     {StatusDraft, StatusSaved, StatusScheduled},
	StatusScheduled: {StatusDraft, StatusSaved, StatusPosted, StatusFailed},
	StatusFailed:    {StatusDraft, StatusSaved, StatusScheduled},
	StatusPosted:    {},
}

// CanTransitionTo reports whether a status change is allowed by the post
// lifecycle. Deletion is permitted from any state and is not modeled here.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsEditable reports whether the post body may still be changed.
func (s PostStatus) IsEditable() bool {
	return s == StatusDraft || s == StatusSaved
}

// GeneratedPost is a candidate or finalized Threads post. ReferencePostIDs
// point at the research posts used as generation inspiration; the references
// are non-owning, so deleting a research post leaves them dangling by design.
type GeneratedPost struct {
	ID               uuid.UUID        `json:"id"`
	Content          string           `json:"content"`
	Type             PostType         `json:"type"`
	TemplateID       string           `json:"templateId,omitempty"`
	ReferencePostIDs []uuid.UUID      `json:"referencePostIds"`
	Status           PostStatus       `json:"status"`
	ScheduledAt      *time.Time       `json:"scheduledAt,omitempty"`
	PostedAt         *time.Time       `json:"postedAt,omitempty"`
	ThreadsPostID    string           `json:"threadsPostId,omitempty"`
	Performance      *PostPerformance `json:"performance,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// PostPerformance holds real-world metrics recorded after publishing.
// It is attached to exactly one posted GeneratedPost and may be overwritten
// by later recordings.
type PostPerformance struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"postId"`
	RecordedAt     time.Time `json:"recordedAt"`
	Reach          int       `json:"reach"`
	Impressions    int       `json:"impressions"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Shares         int       `json:"shares"`
	Saves          int       `json:"saves"`
	EngagementRate float64   `json:"engagementRate"`
	ProfileVisits  *int      `json:"profileVisits,omitempty"`
	Follows        *int      `json:"follows,omitempty"`
}

// VariationType names the single dimension an A/B variation is allowed to
// change.
type VariationType string

// VariationType values.
const (
	VariationHook  VariationType = "hook"
	VariationCTA   VariationType = "cta"
	VariationEmoji VariationType = "emoji"
	VariationTone  VariationType = "tone"
)

// AllVariationTypes returns every defined variation type.
func AllVariationTypes() []VariationType {
	return []VariationType{VariationHook, VariationCTA, VariationEmoji, VariationTone}
}
