package types

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile describes the single operator of the dashboard: the niche they
// post in and the voice their posts are generated with. There is exactly one
// active profile; resetting it clears everything.
type UserProfile struct {
	ID             uuid.UUID    `json:"id"`
	Genre          string       `json:"genre"`
	TargetAudience string       `json:"targetAudience"`
	BackendProduct string       `json:"backendProduct"`
	ToneSettings   ToneSettings `json:"toneSettings"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// TonePreset is a saved copy of a ToneSettings value that can be swapped in
// as the active tone.
type TonePreset struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Settings  ToneSettings `json:"settings"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
