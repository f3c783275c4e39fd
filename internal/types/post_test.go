package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo_DraftLifecycle(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusSaved))
	assert.True(t, StatusSaved.CanTransitionTo(StatusDraft))
	assert.True(t, StatusDraft.CanTransitionTo(StatusScheduled))
	assert.True(t, StatusSaved.CanTransitionTo(StatusScheduled))
}

func TestCanTransitionTo_ScheduledResolves(t *testing.T) {
	assert.True(t, StatusScheduled.CanTransitionTo(StatusPosted))
	assert.True(t, StatusScheduled.CanTransitionTo(StatusFailed))
	// Unscheduling back to a draft state is allowed.
	assert.True(t, StatusScheduled.CanTransitionTo(StatusDraft))
}

func TestCanTransitionTo_PostedIsTerminal(t *testing.T) {
	for _, next := range []PostStatus{StatusDraft, StatusSaved, StatusScheduled, StatusFailed, StatusPosted} {
		assert.False(t, StatusPosted.CanTransitionTo(next), "posted must not transition to %s", next)
	}
}

func TestCanTransitionTo_FailedCanRetry(t *testing.T) {
	assert.True(t, StatusFailed.CanTransitionTo(StatusScheduled))
	assert.True(t, StatusFailed.CanTransitionTo(StatusDraft))
	assert.False(t, StatusFailed.CanTransitionTo(StatusPosted))
}

func TestCanTransitionTo_NothingSkipsToPosted(t *testing.T) {
	assert.False(t, StatusDraft.CanTransitionTo(StatusPosted))
	assert.False(t, StatusSaved.CanTransitionTo(StatusPosted))
}

func TestIsEditable(t *testing.T) {
	assert.True(t, StatusDraft.IsEditable())
	assert.True(t, StatusSaved.IsEditable())
	assert.False(t, StatusScheduled.IsEditable())
	assert.False(t, StatusPosted.IsEditable())
	assert.False(t, StatusFailed.IsEditable())
}

func TestDefaultToneSettings(t *testing.T) {
	tone := DefaultToneSettings()

	assert.Equal(t, StyleFriendly, tone.BaseStyle)
	assert.Equal(t, 50, tone.PolitenessLevel)
	assert.Equal(t, 30, tone.EmojiUsage)
	assert.Equal(t, FirstPersonWatashi, tone.FirstPerson)
	assert.Equal(t, AddressAnata, tone.AudienceAddress)
	assert.NotNil(t, tone.CustomPhrases)
	assert.NotNil(t, tone.NGWords)
}
