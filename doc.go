// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Your Pick web client.

Your Pick lets viewers of a broadcast competition browse programs and their
match topics, cast a vote, compare the audience tally with the broadcast
outcome and leave password-protected comments. All voting data lives behind
an external REST API at <base>/api/v1; this server renders HTML pages over it
and keeps only per-viewer navigation sessions locally.

# Starting the Server

	API_BASE_URL=https://vote.example.com go run .

Or with flags:

	go run . -p 3318 -api https://vote.example.com -t sqlite -d file:yourpick.db

A .env file in the working directory is loaded first; variables already set
in the environment win.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - API_BASE_URL (-api): Voting API origin
  - API_TIMEOUT (-timeout): Per-request API timeout (default: 10s)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Session database connection string
  - CSRF_KEY (-csrf-key): 32-byte key, hex or base64; random when unset
  - SECURE_COOKIES (-secure): Mark cookies Secure when served over TLS
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - handlers: Page handlers (browse, vote, result)
  - router: Route definitions and CSRF protection
  - middleware: Logging and viewer sessions
  - apiclient: Voting API client
  - normalize: Tolerant decoding of API payloads
  - views: Presentation state (options, tallies, filters, comment flows)
  - nav: Typed routes and navigation history
  - sessions: Viewer session store and stale page guard
  - web: Embedded templates and static assets
  - db: Schema creation
  - auth: Key parsing and IP hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
