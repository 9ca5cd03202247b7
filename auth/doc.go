// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key handling for form protection and session records.

# Keys

The CSRF auth key is 32 bytes. It is read from configuration as hex or base64:

	key, err := auth.ParseKey(os.Getenv("CSRF_KEY"))

When none is configured a random one is generated at startup:

	key, err := auth.GenerateKey(auth.KeyLen)

A generated key does not survive restarts, so forms rendered before a restart
fail their CSRF check afterwards.

# IP Hashing

Viewer sessions store a keyed hash instead of the client address:

	hash := auth.HashIP(ipAddress, key)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
