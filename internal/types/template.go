package types

import "time"

// PostTemplate is an immutable catalog entry describing a post structure.
// Structure is a prompt skeleton with {{placeholder}} slots; Example is a
// complete post written in that structure.
type PostTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	Structure string    `json:"structure"`
	Example   string    `json:"example"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
