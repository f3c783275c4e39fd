package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruto/threads-studio/internal/types"
)

func intPtr(n int) *int { return &n }

func TestRate_AllCountsPresent(t *testing.T) {
	rate := Rate(intPtr(100), intPtr(20), intPtr(5), intPtr(5), intPtr(1000))

	require.NotNil(t, rate)
	assert.InDelta(t, 13.0, *rate, 0.0001)
}

func TestRate_MissingCountsTreatedAsZero(t *testing.T) {
	rate := Rate(intPtr(100), nil, nil, nil, intPtr(1000))

	require.NotNil(t, rate)
	assert.InDelta(t, 10.0, *rate, 0.0001)
}

func TestRate_UndefinedWithoutLikes(t *testing.T) {
	assert.Nil(t, Rate(nil, intPtr(20), intPtr(5), intPtr(5), intPtr(1000)))
}

func TestRate_UndefinedWithoutFollowers(t *testing.T) {
	assert.Nil(t, Rate(intPtr(100), nil, nil, nil, nil))
	assert.Nil(t, Rate(intPtr(100), nil, nil, nil, intPtr(0)))
	assert.Nil(t, Rate(intPtr(100), nil, nil, nil, intPtr(-5)))
}

func TestRate_ZeroIsAValidRate(t *testing.T) {
	rate := Rate(intPtr(0), intPtr(0), intPtr(0), intPtr(0), intPtr(500))

	require.NotNil(t, rate)
	assert.Equal(t, 0.0, *rate)
}

func TestRecompute_UsesMergedRecord(t *testing.T) {
	post := &types.ResearchPost{
		Likes:           intPtr(100),
		Comments:        intPtr(20),
		Shares:          intPtr(5),
		Saves:           intPtr(5),
		AuthorFollowers: intPtr(1000),
	}
	Recompute(post)
	require.NotNil(t, post.EngagementRate)
	assert.InDelta(t, 13.0, *post.EngagementRate, 0.0001)

	// An update touching only comments must re-derive from the whole record.
	post.Comments = intPtr(50)
	Recompute(post)
	require.NotNil(t, post.EngagementRate)
	assert.InDelta(t, 16.0, *post.EngagementRate, 0.0001)
}

func TestRecompute_ClearsRateWhenInputsGone(t *testing.T) {
	rate := 13.0
	post := &types.ResearchPost{EngagementRate: &rate, Likes: intPtr(10)}

	Recompute(post)
	assert.Nil(t, post.EngagementRate)
}
