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

// InsertTonePreset stores a new preset.
func (db *DB) InsertTonePreset(ctx context.Context, preset *types.TonePreset) error {
	settingsJSON, err := json.Marshal(preset.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode preset settings: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO tone_presets (id, name, settings, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		preset.ID, preset.Name, settingsJSON, preset.CreatedAt, preset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tone preset: %w", err)
	}
	return nil
}

// GetTonePreset retrieves a preset by id, or nil when it does not exist.
func (db *DB) GetTonePreset(ctx context.Context, id uuid.UUID) (*types.TonePreset, error) {
	var preset types.TonePreset
	var settingsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, settings, created_at, updated_at FROM tone_presets WHERE id = $1`,
		id,
	).Scan(&preset.ID, &preset.Name, &settingsJSON, &preset.CreatedAt, &preset.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tone preset: %w", err)
	}

	if err := json.Unmarshal(settingsJSON, &preset.Settings); err != nil {
		return nil, fmt.Errorf("failed to decode preset settings: %w", err)
	}
	return &preset, nil
}

// ListTonePresets returns all presets, newest first.
func (db *DB) ListTonePresets(ctx context.Context) ([]types.TonePreset, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, settings, created_at, updated_at
		 FROM tone_presets
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tone presets: %w", err)
	}
	defer rows.Close()

	var presets []types.TonePreset
	for rows.Next() {
		var preset types.TonePreset
		var settingsJSON []byte
		if err := rows.Scan(&preset.ID, &preset.Name, &settingsJSON, &preset.CreatedAt, &preset.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tone preset: %w", err)
		}
		if err := json.Unmarshal(settingsJSON, &preset.Settings); err != nil {
			return nil, fmt.Errorf("failed to decode preset settings: %w", err)
		}
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tone presets: %w", err)
	}
	return presets, nil
}

// DeleteTonePreset removes a preset.
func (db *DB) DeleteTonePreset(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM tone_presets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete tone preset: %w", err)
	}
	return nil
}
