package types

import (
	"time"

	"github.com/google/uuid"
)

// SourceType records how a research post entered the system.
type SourceType string

// SourceType values.
const (
	SourceManual SourceType = "manual"
	SourceURL    SourceType = "url"
)

// ResearchPost is a captured competitor post. Interaction counts and the
// follower count are optional; EngagementRate is derived from them and is
// nil whenever it cannot be computed (which is distinct from a computed 0).
// It is recomputed by the research service on every write that touches the
// underlying counts and is never accepted from callers directly.
type ResearchPost struct {
	ID              uuid.UUID  `json:"id"`
	Content         string     `json:"content"`
	SourceType      SourceType `json:"sourceType"`
	SourceURL       string     `json:"sourceUrl,omitempty"`
	AuthorName      string     `json:"authorName,omitempty"`
	AuthorFollowers *int       `json:"authorFollowers,omitempty"`
	PostedAt        *time.Time `json:"postedAt,omitempty"`
	Likes           *int       `json:"likes,omitempty"`
	Comments        *int       `json:"comments,omitempty"`
	Shares          *int       `json:"shares,omitempty"`
	Saves           *int       `json:"saves,omitempty"`
	EngagementRate  *float64   `json:"engagementRate,omitempty"`
	Tags            []string   `json:"tags"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AnalysisResult is the structured output of an LLM analysis over a batch of
// research posts.
type AnalysisResult struct {
	Patterns        []string `json:"patterns"`
	SuccessFactors  []string `json:"successFactors"`
	Recommendations []string `json:"recommendations"`
}
