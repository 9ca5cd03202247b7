// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the viewer session tables.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is shared by sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table CreateSchema creates. Used by tests.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`DROP TABLE IF EXISTS viewer_session`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

const schema = `
-- Viewer sessions
CREATE TABLE IF NOT EXISTS viewer_session (
    id TEXT PRIMARY KEY,
    generation BIGINT NOT NULL DEFAULT 0,
    current_route TEXT NOT NULL DEFAULT '{"page":"landing"}',
    pending_route TEXT NOT NULL DEFAULT '{"page":"landing"}',
    history TEXT NOT NULL DEFAULT '[]',
    ip_hash TEXT,
    user_agent TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_seen_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_viewer_session_last_seen ON viewer_session(last_seen_at);
`
