package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/haruto/threads-studio/internal/types"
)

const generatedPostColumns = `id, content, post_type, template_id, reference_post_ids,
	status, scheduled_at, posted_at, threads_post_id, performance, created_at, updated_at`

// InsertGeneratedPost stores a new generated post.
func (db *DB) InsertGeneratedPost(ctx context.Context, post *types.GeneratedPost) error {
	perfJSON, err := marshalPerformance(post.Performance)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO generated_posts (`+generatedPostColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		post.ID, post.Content, post.Type, post.TemplateID, post.ReferencePostIDs,
		post.Status, post.ScheduledAt, post.PostedAt, post.ThreadsPostID,
		perfJSON, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// GetGeneratedPost retrieves a post by id, or nil when it does not exist.
func (db *DB) GetGeneratedPost(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+generatedPostColumns+` FROM generated_posts WHERE id = $1`, id)

	post, err := scanGeneratedPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// UpdateGeneratedPost rewrites a post row.
func (db *DB) UpdateGeneratedPost(ctx context.Context, post *types.GeneratedPost) error {
	perfJSON, err := marshalPerformance(post.Performance)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE generated_posts SET
		   content = $2, post_type = $3, template_id = $4, reference_post_ids = $5,
		   status = $6, scheduled_at = $7, posted_at = $8, threads_post_id = $9,
		   performance = $10, updated_at = $11
		 WHERE id = $1`,
		post.ID, post.Content, post.Type, post.TemplateID, post.ReferencePostIDs,
		post.Status, post.ScheduledAt, post.PostedAt, post.ThreadsPostID,
		perfJSON, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// DeleteGeneratedPost removes a post.
func (db *DB) DeleteGeneratedPost(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM generated_posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// ListGeneratedPosts returns all posts, newest first.
func (db *DB) ListGeneratedPosts(ctx context.Context) ([]types.GeneratedPost, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+generatedPostColumns+` FROM generated_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []types.GeneratedPost
	for rows.Next() {
		post, err := scanGeneratedPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}

func scanGeneratedPost(row pgx.Row) (*types.GeneratedPost, error) {
	var post types.GeneratedPost
	var perfJSON []byte
	err := row.Scan(&post.ID, &post.Content, &post.Type, &post.TemplateID,
		&post.ReferencePostIDs, &post.Status, &post.ScheduledAt, &post.PostedAt,
		&post.ThreadsPostID, &perfJSON, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(perfJSON) > 0 {
		var perf types.PostPerformance
		if err := json.Unmarshal(perfJSON, &perf); err != nil {
			return nil, fmt.Errorf("failed to decode performance: %w", err)
		}
		post.Performance = &perf
	}
	return &post, nil
}

func marshalPerformance(perf *types.PostPerformance) ([]byte, error) {
	if perf == nil {
		return nil, nil
	}
	data, err := json.Marshal(perf)
	if err != nil {
		return nil, fmt.Errorf("failed to encode performance: %w", err)
	}
	return data, nil
}
