// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /programs", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Viewer Sessions

WithSession resolves the yp_session cookie to a viewer session, creating one
when needed, and exposes its id to handlers:

	handler = middleware.WithSession(store, ipKey, cfg.SecureCookies)(handler)
	id := middleware.SessionID(r.Context())

New sessions record a keyed hash of the client IP, never the address itself.

# CSRF

Plaintext marks requests as plain HTTP for gorilla/csrf when cookies are not
secure, so local development over http:// passes its origin checks:

	handler = middleware.Plaintext(cfg.SecureCookies)(csrf.Protect(key)(mux))

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
