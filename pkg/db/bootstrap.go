package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Defaults written on first run.
const (
	DefaultProfile  = "default"
	DefaultBasePath = "/udmcws"
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8080
)

// Bootstrap creates the default profile and API server settings if no
// profile exists yet.
func (db *DB) Bootstrap(ctx context.Context) error {
	return db.Tx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
			return fmt.Errorf("failed to check profiles: %w", err)
		}
		if count > 0 {
			return nil
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (name, base_path, is_active)
			VALUES (?, ?, 1)
		`, DefaultProfile, DefaultBasePath)
		if err != nil {
			return fmt.Errorf("failed to create default profile: %w", err)
		}

		profileID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get profile ID: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO api_servers (profile_id, host, port)
			VALUES (?, ?, ?)
		`, profileID, DefaultHost, DefaultPort); err != nil {
			return fmt.Errorf("failed to create default API server: %w", err)
		}

		return nil
	})
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
