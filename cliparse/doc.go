// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p          Server port (default 3318)
	-api        Voting API base URL (default http://localhost:8000)
	-timeout    Voting API request timeout (default 10s)
	-d          Session database URL
	-t          Database type, sqlite or postgres (default sqlite)
	-csrf-key   32-byte CSRF key, hex or base64
	-secure     Mark cookies Secure
	-log-level  debug, info, warn or error (default info)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	API_BASE_URL   → -api
	API_TIMEOUT    → -timeout
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	CSRF_KEY       → -csrf-key
	SECURE_COOKIES → -secure
	LOG_LEVEL      → -log-level

CLI flags take precedence over environment variables, which take precedence
over a .env file.

# Validation

ParseFlags returns an error for an API URL that is not http or https, a
non-positive timeout, an unknown database type or a CSRF key that does not
decode to 32 bytes. Without a CSRF key a random one is generated and
CSRFKeyGenerated is set so main can warn about it.
*/
package cliparse
