//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruto/threads-studio/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.EnsureSchema(ctx))
	return db
}

func TestIntegration_ResearchPost_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	likes := 150
	followers := 2000
	now := time.Now().UTC().Truncate(time.Microsecond)
	rate := 7.5
	post := &types.ResearchPost{
		ID:              uuid.New(),
		Content:         "統合テスト用の投稿",
		SourceType:      types.SourceManual,
		Likes:           &likes,
		AuthorFollowers: &followers,
		EngagementRate:  &rate,
		Tags:            []string{"テスト"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, db.InsertResearchPost(ctx, post))
	defer func() { _ = db.DeleteResearchPost(ctx, post.ID) }()

	loaded, err := db.GetResearchPost(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, post.Content, loaded.Content)
	require.NotNil(t, loaded.Likes)
	assert.Equal(t, likes, *loaded.Likes)
	assert.Equal(t, []string{"テスト"}, loaded.Tags)

	loaded.Content = "更新した内容"
	loaded.UpdatedAt = time.Now().UTC()
	require.NoError(t, db.UpdateResearchPost(ctx, loaded))

	reloaded, err := db.GetResearchPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "更新した内容", reloaded.Content)

	require.NoError(t, db.DeleteResearchPost(ctx, post.ID))
	gone, err := db.GetResearchPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestIntegration_GeneratedPost_PerformanceRoundTrip(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	post := &types.GeneratedPost{
		ID:        uuid.New(),
		Content:   "公開済み投稿",
		Type:      types.PostTypeAI,
		Status:    types.StatusPosted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.InsertGeneratedPost(ctx, post))
	defer func() { _ = db.DeleteGeneratedPost(ctx, post.ID) }()

	post.Performance = &types.PostPerformance{
		ID:         uuid.New(),
		PostID:     post.ID,
		RecordedAt: now,
		Likes:      42,
	}
	require.NoError(t, db.UpdateGeneratedPost(ctx, post))

	loaded, err := db.GetGeneratedPost(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Performance)
	assert.Equal(t, 42, loaded.Performance.Likes)
}

func TestIntegration_Profile_SingleRow(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	require.NoError(t, db.DeleteProfile(ctx))

	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := &types.UserProfile{
		ID:           uuid.New(),
		Genre:        "キャリア",
		ToneSettings: types.DefaultToneSettings(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.SaveProfile(ctx, profile))
	defer func() { _ = db.DeleteProfile(ctx) }()

	loaded, err := db.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "キャリア", loaded.Genre)
	assert.Equal(t, types.StyleFriendly, loaded.ToneSettings.BaseStyle)
}
