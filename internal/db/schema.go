package db

import (
	"context"
	"fmt"
)

// schemaStatements create the tables on first run. The app is single-user,
// so the schema stays small enough to manage inline instead of through a
// migration tool. Tone settings and performance metrics are stored as JSONB
// because they are read and written whole.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		genre TEXT NOT NULL DEFAULT '',
		target_audience TEXT NOT NULL DEFAULT '',
		backend_product TEXT NOT NULL DEFAULT '',
		tone_settings JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tone_presets (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		settings JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS research_posts (
		id UUID PRIMARY KEY,
		content TEXT NOT NULL,
		source_type TEXT NOT NULL,
		source_url TEXT NOT NULL DEFAULT '',
		author_name TEXT NOT NULL DEFAULT '',
		author_followers INTEGER,
		posted_at TIMESTAMPTZ,
		likes INTEGER,
		comments INTEGER,
		shares INTEGER,
		saves INTEGER,
		engagement_rate DOUBLE PRECISION,
		tags TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS generated_posts (
		id UUID PRIMARY KEY,
		content TEXT NOT NULL,
		post_type TEXT NOT NULL,
		template_id TEXT NOT NULL DEFAULT '',
		reference_post_ids UUID[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL,
		scheduled_at TIMESTAMPTZ,
		posted_at TIMESTAMPTZ,
		threads_post_id TEXT NOT NULL DEFAULT '',
		performance JSONB,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_research_posts_engagement
		ON research_posts (engagement_rate DESC NULLS LAST)`,
	`CREATE INDEX IF NOT EXISTS idx_generated_posts_status
		ON generated_posts (status)`,
}

// EnsureSchema creates any missing tables and indexes.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
