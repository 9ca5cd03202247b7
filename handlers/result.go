// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/your-pick/models"
	"github.com/danielhkuo/your-pick/nav"
	"github.com/danielhkuo/your-pick/views"
	"github.com/danielhkuo/your-pick/web"
)

type ResultHandler struct {
	pages
}

func NewResultHandler(api API, guard Guard, render *web.Renderer) *ResultHandler {
	return &ResultHandler{pages{api: api, guard: guard, render: render}}
}

type commentItem struct {
	ID           int
	Author       string
	Content      string
	CreatedAt    string
	Confirming   bool
	DeleteError  string
	ConfirmURL   string
	DeleteAction string
}

type resultData struct {
	TopicID  int
	VoteID   int
	Result   views.ResultView
	Comments []commentItem
	Composer views.Composer
	VoteURL  string
	SelfURL  string
	Error    string
	Reload   string
}

// Show handles GET /result?topic_id=&vote_id=[&delete=<comment id>]
// ?delete opens the password prompt for that comment.
func (h *ResultHandler) Show(w http.ResponseWriter, r *http.Request) {
	route, err := nav.Parse(r.URL)
	if err != nil {
		h.badRoute(w, r, err)
		return
	}

	var deletion *views.Deletion
	if id := nav.ParseID(r.URL.Query().Get("delete")); id > 0 {
		d := views.StartDelete(id)
		deletion = &d
	}

	h.show(w, r, http.StatusOK, route, views.Composer{}, deletion)
}

// CreateComment handles POST /result/comments
// Incomplete forms are returned without calling the API.
func (h *ResultHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	route, ok := h.formRoute(w, r)
	if !ok {
		return
	}

	composer := views.Composer{Form: views.CommentForm{
		Author:   r.PostFormValue("author"),
		Password: r.PostFormValue("password"),
		Content:  r.PostFormValue("content"),
	}}

	composer, call := composer.Submit(route.VoteID)
	if !call {
		composer.Form.Password = ""
		h.show(w, r, http.StatusBadRequest, route, composer, nil)
		return
	}

	_, err := h.api.CreateComment(r.Context(), route.VoteID, models.CreateCommentRequest{
		UserName: composer.Form.Author,
		Password: composer.Form.Password,
		Content:  composer.Form.Content,
	})
	if r.Context().Err() != nil {
		return
	}

	composer = composer.Resolve(err)
	if err != nil {
		slog.Error("failed to create comment", "vote_id", route.VoteID, "error", err)
		composer.Form.Password = ""
		h.show(w, r, http.StatusBadGateway, route, composer, nil)
		return
	}

	slog.Info("comment created", "topic_id", route.TopicID, "vote_id", route.VoteID)
	http.Redirect(w, r, route.URL()+"#comments", http.StatusSeeOther)
}

// DeleteComment handles POST /result/comments/{id}/delete?topic_id=&vote_id=
// A blank password keeps the prompt open without calling the API.
func (h *ResultHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	route, err := nav.Parse(&url.URL{Path: "/result", RawQuery: r.URL.RawQuery})
	if err != nil {
		h.badRoute(w, r, err)
		return
	}

	commentID := nav.ParseID(r.PathValue("id"))
	if commentID == 0 {
		h.badRoute(w, r, &nav.ParamError{Param: "comment id"})
		return
	}

	deletion, call := views.StartDelete(commentID).Submit(r.PostFormValue("password"))
	if !call {
		h.show(w, r, http.StatusBadRequest, route, views.Composer{}, &deletion)
		return
	}

	err = h.api.DeleteComment(r.Context(), commentID, r.PostFormValue("password"))
	if r.Context().Err() != nil {
		return
	}

	deletion = deletion.Resolve(err)
	if deletion.State != views.DeleteRemoved {
		slog.Info("comment delete refused", "comment_id", commentID, "error", err)
		h.show(w, r, http.StatusForbidden, route, views.Composer{}, &deletion)
		return
	}

	slog.Info("comment deleted", "comment_id", commentID, "topic_id", route.TopicID)
	http.Redirect(w, r, route.URL()+"#comments", http.StatusSeeOther)
}

// formRoute reads the result route from POSTed topic_id and vote_id
func (h *ResultHandler) formRoute(w http.ResponseWriter, r *http.Request) (nav.Route, bool) {
	if err := r.ParseForm(); err != nil {
		h.message(w, r, http.StatusBadRequest, nav.Landing(), "Invalid form.", "")
		return nav.Route{}, false
	}
	topicID := nav.ParseID(r.PostFormValue("topic_id"))
	if topicID == 0 {
		h.badRoute(w, r, &nav.ParamError{Param: "topic_id"})
		return nav.Route{}, false
	}
	return nav.Result(topicID, nav.ParseID(r.PostFormValue("vote_id"))), true
}

// fetch loads results and comments together; either failure fails both
func (h *ResultHandler) fetch(ctx context.Context, topicID int) (models.ResultAggregate, []models.Comment, error) {
	var agg models.ResultAggregate
	var comments []models.Comment

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		agg, err = h.api.GetResults(ctx, topicID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = h.api.ListComments(ctx, topicID)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.ResultAggregate{}, nil, err
	}
	return agg, comments, nil
}

func (h *ResultHandler) show(w http.ResponseWriter, r *http.Request, status int, route nav.Route, composer views.Composer, deletion *views.Deletion) {
	l := h.begin(r, route)

	agg, comments, err := h.fetch(r.Context(), route.TopicID)
	if !h.finish(r, l) {
		return
	}

	data := resultData{
		TopicID:  route.TopicID,
		VoteID:   route.VoteID,
		Composer: composer,
		VoteURL:  nav.Vote(route.TopicID).URL(),
		SelfURL:  route.URL(),
	}

	title := "Result"
	if err != nil {
		var retry bool
		data.Error, status, retry = failure("results", err)
		if retry {
			data.Reload = route.URL()
		}
	} else {
		data.Result = views.BuildResult(agg)
		data.Comments = commentItems(comments, route, deletion)
		title = data.Result.Title
	}

	h.render.Render(w, status, "result", h.page(r, title, route, data))
}

func commentItems(comments []models.Comment, route nav.Route, deletion *views.Deletion) []commentItem {
	items := make([]commentItem, 0, len(comments))
	for _, c := range comments {
		item := commentItem{
			ID:           c.ID,
			Author:       c.Author,
			Content:      c.Content,
			CreatedAt:    c.CreatedAt,
			ConfirmURL:   route.URL() + "&delete=" + strconv.Itoa(c.ID) + "#comment-" + strconv.Itoa(c.ID),
			DeleteAction: deleteAction(c.ID, route),
		}
		if deletion != nil && deletion.CommentID == c.ID && deletion.State == views.DeleteConfirming {
			item.Confirming = true
			item.DeleteError = deletion.Error
		}
		items = append(items, item)
	}
	return items
}

func deleteAction(commentID int, route nav.Route) string {
	u, _ := url.Parse(route.URL())
	return fmt.Sprintf("/result/comments/%d/delete?%s", commentID, u.RawQuery)
}
