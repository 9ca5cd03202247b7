// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on sqlite (modernc.org/sqlite) and postgres (lib/pq).

# Tables

  - viewer_session: one row per browser, holding the request generation
    counter, the last rendered (current) and last requested (pending) route
    and the navigation history, routes stored as JSON text

Votes, tallies and comments are never stored locally; they live in the
external API.

# Indexes

  - viewer_session.last_seen_at, for pruning idle sessions
*/
package db
