// Package engagement derives the engagement-rate metric used to rank and
// filter research posts.
package engagement

import "github.com/haruto/threads-studio/internal/types"

// Rate computes the engagement rate as a percentage of the author's
// audience:
//
//	100 * (likes + comments + shares + saves) / followers
//
// Missing counts contribute 0 to the sum, but the rate itself is only
// defined when likes is known and followers is positive. A nil result means
// "cannot be computed" and is distinct from a computed 0.
func Rate(likes, comments, shares, saves, followers *int) *float64 {
	if likes == nil || followers == nil || *followers <= 0 {
		return nil
	}

	total := *likes + orZero(comments) + orZero(shares) + orZero(saves)
	rate := float64(total) / float64(*followers) * 100
	return &rate
}

// Recompute refreshes a research post's derived rate from its current
// fields. It is the only path that writes EngagementRate; callers must
// invoke it with the fully merged record, never with a partial delta,
// because the rate needs all four counts together.
func Recompute(p *types.ResearchPost) {
	p.EngagementRate = Rate(p.Likes, p.Comments, p.Shares, p.Saves, p.AuthorFollowers)
}

func orZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
