package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/haruto/threads-studio/internal/types"
)

// GetProfile returns the operator profile, or nil when none has been saved
// yet. The app is single-user; at most one profile row exists.
func (db *DB) GetProfile(ctx context.Context) (*types.UserProfile, error) {
	var profile types.UserProfile
	var toneJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, genre, target_audience, backend_product, tone_settings, created_at, updated_at
		 FROM profiles
		 ORDER BY created_at
		 LIMIT 1`,
	).Scan(&profile.ID, &profile.Genre, &profile.TargetAudience, &profile.BackendProduct,
		&toneJSON, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(toneJSON, &profile.ToneSettings); err != nil {
		return nil, fmt.Errorf("failed to decode tone settings: %w", err)
	}
	return &profile, nil
}

// SaveProfile inserts or replaces the operator profile.
func (db *DB) SaveProfile(ctx context.Context, profile *types.UserProfile) error {
	toneJSON, err := json.Marshal(profile.ToneSettings)
	if err != nil {
		return fmt.Errorf("failed to encode tone settings: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (id, genre, target_audience, backend_product, tone_settings, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   genre = $2, target_audience = $3, backend_product = $4,
		   tone_settings = $5, updated_at = $7`,
		profile.ID, profile.Genre, profile.TargetAudience, profile.BackendProduct,
		toneJSON, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// DeleteProfile removes all profile rows. Used by the profile reset flow.
func (db *DB) DeleteProfile(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
