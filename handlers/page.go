// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"

	"github.com/danielhkuo/your-pick/apiclient"
	"github.com/danielhkuo/your-pick/middleware"
	"github.com/danielhkuo/your-pick/models"
	"github.com/danielhkuo/your-pick/nav"
	"github.com/danielhkuo/your-pick/normalize"
	"github.com/danielhkuo/your-pick/sessions"
	"github.com/danielhkuo/your-pick/web"
)

// API is the voting service as the pages use it. *apiclient.Client implements it.
type API interface {
	ListPrograms(ctx context.Context) ([]models.Program, error)
	GetProgram(ctx context.Context, programID int) (models.Program, error)
	ListTopics(ctx context.Context, programID int) ([]models.Topic, error)
	GetTopic(ctx context.Context, topicID int) (models.Topic, error)
	SubmitVote(ctx context.Context, topicID, choice int) (models.VoteReceipt, error)
	GetResults(ctx context.Context, topicID int) (models.ResultAggregate, error)
	ListComments(ctx context.Context, topicID int) ([]models.Comment, error)
	CreateComment(ctx context.Context, voteID int, req models.CreateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int, password string) error
}

// Guard orders page loads per viewer. *sessions.Store implements it.
type Guard interface {
	Begin(ctx context.Context, id string, route nav.Route) (sessions.Ticket, error)
	Commit(ctx context.Context, t sessions.Ticket) error
	Back(ctx context.Context, id string, current nav.Route) (nav.Route, error)
}

// pages holds what every page handler shares
type pages struct {
	api    API
	guard  Guard
	render *web.Renderer
}

// load is one page load's ticket; inactive when the viewer has no session
type load struct {
	ticket sessions.Ticket
	active bool
}

func (p *pages) begin(r *http.Request, route nav.Route) load {
	id := middleware.SessionID(r.Context())
	if id == "" || p.guard == nil {
		return load{}
	}

	ticket, err := p.guard.Begin(r.Context(), id, route)
	if err != nil {
		slog.Error("failed to begin page load", "route", route.URL(), "error", err)
		return load{}
	}
	return load{ticket: ticket, active: true}
}

// finish reports whether the data fetched for l may be rendered, which is
// false only when the client is gone. A ticket overtaken by a newer load in
// another tab still renders; its route just does not become current.
func (p *pages) finish(r *http.Request, l load) bool {
	if err := r.Context().Err(); err != nil {
		slog.Debug("client gone before render", "path", r.URL.Path, "error", err)
		return false
	}
	if !l.active {
		return true
	}

	err := p.guard.Commit(r.Context(), l.ticket)
	switch {
	case errors.Is(err, sessions.ErrStale):
		slog.Debug("page load overtaken, history unchanged", "route", l.ticket.Route.URL())
	case err != nil:
		slog.Error("failed to commit page load", "route", l.ticket.Route.URL(), "error", err)
	}
	return true
}

// back is the back link target for route, empty on the landing page
func (p *pages) back(r *http.Request, route nav.Route) string {
	if route.Page == nav.PageLanding {
		return ""
	}

	id := middleware.SessionID(r.Context())
	if id == "" || p.guard == nil {
		return nav.Parent(route).URL()
	}

	to, err := p.guard.Back(r.Context(), id, route)
	if err != nil && !errors.Is(err, sessions.ErrSessionNotFound) {
		slog.Error("failed to load navigation history", "error", err)
	}
	return to.URL()
}

func (p *pages) page(r *http.Request, title string, route nav.Route, data any) web.Page {
	return web.Page{
		Title: title,
		Back:  p.back(r, route),
		CSRF:  csrf.TemplateField(r),
		Data:  data,
	}
}

// message renders a page-level terminal state
func (p *pages) message(w http.ResponseWriter, r *http.Request, status int, route nav.Route, text, reload string) {
	p.render.Render(w, status, "message", p.page(r, "", route, web.Message{Text: text, Reload: reload}))
}

// badRoute renders a 400 for missing or invalid route parameters
func (p *pages) badRoute(w http.ResponseWriter, r *http.Request, err error) {
	slog.Info("bad route parameters", "path", r.URL.Path, "error", err)
	p.message(w, r, http.StatusBadRequest, nav.Landing(), err.Error(), "")
}

// failure maps a fetch error to a user message and status, and logs it.
// retry is false when reloading cannot help.
func failure(what string, err error) (text string, status int, retry bool) {
	attrs := []any{"what", what, "error", err}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, "status", apiErr.Status)
	}
	slog.Error("failed to fetch", attrs...)

	switch {
	case errors.Is(err, apiclient.ErrNotFound):
		return strings.ToUpper(what[:1]) + what[1:] + " not found.", http.StatusNotFound, false
	case errors.Is(err, normalize.ErrMalformed):
		return "The server sent an unexpected " + what + " response.", http.StatusBadGateway, true
	}
	return "Failed to load " + what + ".", http.StatusBadGateway, true
}
