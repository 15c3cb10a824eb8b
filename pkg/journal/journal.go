package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/radiowatch/radiowatch/pkg/device"
)

const maxSightingLimit = 1000

// Sighting is one journaled device row.
type Sighting struct {
	ID        int64  `json:"id"`
	Kind      string `json:"type"`
	MAC       string `json:"mac"`
	Name      string `json:"name"`
	Vendor    string `json:"vendor"`
	SignalDBM *int   `json:"signal_dbm"`
	SeenAt    int64  `json:"seen_at"`
}

// RecordSnapshot appends one row per device view, all stamped with the
// same time so a snapshot stays reconstructable.
func (db *DB) RecordSnapshot(ctx context.Context, views []device.View, at time.Time) error {
	if len(views) == 0 {
		return nil
	}

	seenAt := at.Unix()
	return db.Tx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO sightings (kind, mac, name, vendor, signal_dbm, seen_at)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare sighting insert: %w", err)
		}
		defer stmt.Close()

		for _, v := range views {
			var signal any
			if v.SignalDBM != nil {
				signal = *v.SignalDBM
			}
			if _, err := stmt.ExecContext(ctx,
				string(v.Type), v.Addr, v.Name, v.Vendor, signal, seenAt); err != nil {
				return fmt.Errorf("failed to insert sighting for %s: %w", v.Addr, err)
			}
		}
		return nil
	})
}

// RecentSightings returns up to limit journal rows for one address,
// newest first. The limit is clamped to a sane range.
func (db *DB) RecentSightings(ctx context.Context, mac string, limit int) ([]Sighting, error) {
	if limit <= 0 || limit > maxSightingLimit {
		limit = maxSightingLimit
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, kind, mac, name, vendor, signal_dbm, seen_at
		FROM sightings
		WHERE mac = ?
		ORDER BY id DESC
		LIMIT ?`, mac, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sightings: %w", err)
	}
	defer rows.Close()

	var out []Sighting
	for rows.Next() {
		var s Sighting
		var signal sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Kind, &s.MAC, &s.Name, &s.Vendor, &signal, &s.SeenAt); err != nil {
			return nil, fmt.Errorf("failed to scan sighting: %w", err)
		}
		if signal.Valid {
			v := int(signal.Int64)
			s.SignalDBM = &v
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sightings: %w", err)
	}
	return out, nil
}
