package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const currentSchemaVersion = 1

// Schema SQL for version 1
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version     INTEGER PRIMARY KEY,
    applied_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

-- One row per device per recorded snapshot
CREATE TABLE IF NOT EXISTS sightings (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    kind        TEXT NOT NULL,
    mac         TEXT NOT NULL,
    name        TEXT NOT NULL DEFAULT '',
    vendor      TEXT NOT NULL DEFAULT '',
    signal_dbm  INTEGER,
    seen_at     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sightings_mac ON sightings(mac, id);
CREATE INDEX IF NOT EXISTS idx_sightings_seen ON sightings(seen_at);
`

// Migrate brings the journal schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	version, err := db.schemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version >= currentSchemaVersion {
		return nil
	}

	return db.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaV1); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		return nil
	})
}

// schemaVersion returns the highest applied schema version, or 0 for a
// fresh database.
func (db *DB) schemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		if isMissingTable(err) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

func isMissingTable(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	// modernc.org/sqlite surfaces "no such table" as a plain error.
	return err != nil && strings.Contains(err.Error(), "no such table")
}
