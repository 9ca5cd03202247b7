// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"github.com/danielhkuo/your-pick/auth"
	"github.com/danielhkuo/your-pick/sessions"
)

// SessionCookie names the cookie carrying the viewer session id
const SessionCookie = "yp_session"

const sessionMaxAge = 30 * 24 * time.Hour

type ctxKey int

const sessionKey ctxKey = iota

// statusRecorder remembers the status code written through it
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// SessionEnsurer is the part of the session store the middleware needs
type SessionEnsurer interface {
	Ensure(ctx context.Context, id string, meta sessions.Meta) (sessions.Session, bool, error)
}

// WithSession resolves the viewer session from its cookie, issuing a new one
// when missing or unknown. A store failure is logged and the request goes on
// without a session.
func WithSession(store SessionEnsurer, ipKey []byte, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}

			sess, created, err := store.Ensure(r.Context(), id, sessions.Meta{
				IPHash:    auth.HashIP(GetClientIP(r), ipKey),
				UserAgent: r.UserAgent(),
			})
			if err != nil {
				slog.Error("failed to resolve viewer session", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID,
					Path:     "/",
					MaxAge:   int(sessionMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
				slog.Debug("viewer session created", "session_id", sess.ID)
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess.ID)))
		})
	}
}

// SessionID returns the viewer session id set by WithSession, or ""
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}

// WithSessionID returns ctx carrying id as the viewer session
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// Plaintext marks requests as plain HTTP for gorilla/csrf when the server
// is not behind TLS, which disables its HTTPS-only Referer check.
func Plaintext(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secure {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// GetClientIP extracts the client IP address
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr
func GetClientIP(r *http.Request) string {
	// Check X-Forwarded-For (load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take first IP in chain
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' || xff[i] == ' ' {
				return xff[:i]
			}
		}
		return xff
	}

	// Check X-Real-IP (nginx)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to RemoteAddr
	// Strip port if present
	addr := r.RemoteAddr
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
	}
	return addr
}
