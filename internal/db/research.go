package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/haruto/threads-studio/internal/types"
)

const researchPostColumns = `id, content, source_type, source_url, author_name, author_followers,
	posted_at, likes, comments, shares, saves, engagement_rate, tags, created_at, updated_at`

// InsertResearchPost stores a new research post.
func (db *DB) InsertResearchPost(ctx context.Context, post *types.ResearchPost) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO research_posts (`+researchPostColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		post.ID, post.Content, post.SourceType, post.SourceURL, post.AuthorName,
		post.AuthorFollowers, post.PostedAt, post.Likes, post.Comments, post.Shares,
		post.Saves, post.EngagementRate, post.Tags, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert research post: %w", err)
	}
	return nil
}

// GetResearchPost retrieves a research post by id, or nil when it does not
// exist.
func (db *DB) GetResearchPost(ctx context.Context, id uuid.UUID) (*types.ResearchPost, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+researchPostColumns+` FROM research_posts WHERE id = $1`, id)

	post, err := scanResearchPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get research post: %w", err)
	}
	return post, nil
}

// UpdateResearchPost rewrites a research post row.
func (db *DB) UpdateResearchPost(ctx context.Context, post *types.ResearchPost) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE research_posts SET
		   content = $2, source_type = $3, source_url = $4, author_name = $5,
		   author_followers = $6, posted_at = $7, likes = $8, comments = $9,
		   shares = $10, saves = $11, engagement_rate = $12, tags = $13, updated_at = $14
		 WHERE id = $1`,
		post.ID, post.Content, post.SourceType, post.SourceURL, post.AuthorName,
		post.AuthorFollowers, post.PostedAt, post.Likes, post.Comments, post.Shares,
		post.Saves, post.EngagementRate, post.Tags, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update research post: %w", err)
	}
	return nil
}

// DeleteResearchPost removes a research post.
func (db *DB) DeleteResearchPost(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM research_posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete research post: %w", err)
	}
	return nil
}

// ListResearchPosts returns all research posts, newest first.
func (db *DB) ListResearchPosts(ctx context.Context) ([]types.ResearchPost, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+researchPostColumns+` FROM research_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list research posts: %w", err)
	}
	defer rows.Close()

	var posts []types.ResearchPost
	for rows.Next() {
		post, err := scanResearchPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan research post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read research posts: %w", err)
	}
	return posts, nil
}

func scanResearchPost(row pgx.Row) (*types.ResearchPost, error) {
	var post types.ResearchPost
	err := row.Scan(&post.ID, &post.Content, &post.SourceType, &post.SourceURL,
		&post.AuthorName, &post.AuthorFollowers, &post.PostedAt, &post.Likes,
		&post.Comments, &post.Shares, &post.Saves, &post.EngagementRate,
		&post.Tags, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
