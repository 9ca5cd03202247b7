// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/danielhkuo/your-pick/apiclient"
	"github.com/danielhkuo/your-pick/cliparse"
	"github.com/danielhkuo/your-pick/handlers"
	"github.com/danielhkuo/your-pick/middleware"
	"github.com/danielhkuo/your-pick/sessions"
	"github.com/danielhkuo/your-pick/web"
)

// CSRFField is the hidden form field carrying the CSRF token
const CSRFField = "csrf_token"

func NewRouter(db *sql.DB, cfg cliparse.Config) (http.Handler, error) {
	render, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout)
	store := sessions.NewStore(db)

	mux := http.NewServeMux()

	// Pages get request logging and a viewer session
	session := middleware.WithSession(store, cfg.CSRFKey, cfg.SecureCookies)
	page := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(session(h).ServeHTTP)
	}

	// Initialize handlers
	browseHandler := handlers.NewBrowseHandler(api, store, render)
	voteHandler := handlers.NewVoteHandler(api, store, render)
	resultHandler := handlers.NewResultHandler(api, store, render)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /static/", web.Static())

	// Browsing
	mux.HandleFunc("GET /{$}", page(browseHandler.Landing))
	mux.HandleFunc("GET /programs", page(browseHandler.Programs))
	mux.HandleFunc("GET /topics", page(browseHandler.Topics))

	// Voting
	mux.HandleFunc("GET /vote", page(voteHandler.Show))
	mux.HandleFunc("POST /vote", page(voteHandler.Submit))

	// Results and comments
	mux.HandleFunc("GET /result", page(resultHandler.Show))
	mux.HandleFunc("POST /result/comments", page(resultHandler.CreateComment))
	mux.HandleFunc("POST /result/comments/{id}/delete", page(resultHandler.DeleteComment))

	// Anything else goes back to the landing page
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("unknown path", "method", r.Method, "path", r.URL.Path)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	protect := csrf.Protect(cfg.CSRFKey,
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
		csrf.FieldName(CSRFField),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Info("csrf check failed", "path", r.URL.Path, "reason", csrf.FailureReason(r))
			render.Render(w, http.StatusForbidden, "message", web.Page{
				Data: web.Message{Text: "This form has expired. Go back, reload the page and try again."},
			})
		})),
	)

	return middleware.Plaintext(cfg.SecureCookies)(protect(mux)), nil
}
