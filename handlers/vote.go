// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/your-pick/models"
	"github.com/danielhkuo/your-pick/nav"
	"github.com/danielhkuo/your-pick/views"
	"github.com/danielhkuo/your-pick/web"
)

const (
	msgChooseOption = "Choose one of the options."
	msgVoteFailed   = "Failed to submit the vote. Please try again."
)

type VoteHandler struct {
	pages
}

func NewVoteHandler(api API, guard Guard, render *web.Renderer) *VoteHandler {
	return &VoteHandler{pages{api: api, guard: guard, render: render}}
}

type voteData struct {
	TopicID   int
	Title     string
	Episode   int
	MatchType string
	EmbedURL  string
	Options   []views.Option
	GridClass string
	Selected  int
	Error     string
	ResultURL string
}

func newVoteData(t models.Topic) voteData {
	opts := views.Options(views.TopicKind(t))
	title := t.Title
	if title == "" {
		title = "Vote"
	}
	return voteData{
		TopicID:   t.ID,
		Title:     title,
		Episode:   t.Episode,
		MatchType: t.MatchType,
		EmbedURL:  views.EmbedURL(t.VideoURL),
		Options:   opts,
		GridClass: views.GridClass(len(opts)),
		ResultURL: nav.Result(t.ID, 0).URL(),
	}
}

// Show handles GET /vote?topic_id=
func (h *VoteHandler) Show(w http.ResponseWriter, r *http.Request) {
	route, err := nav.Parse(r.URL)
	if err != nil {
		h.badRoute(w, r, err)
		return
	}
	l := h.begin(r, route)

	topic, err := h.api.GetTopic(r.Context(), route.TopicID)
	if !h.finish(r, l) {
		return
	}
	if err != nil {
		h.topicFailed(w, r, route, err)
		return
	}

	h.render.Render(w, http.StatusOK, "vote", h.page(r, topic.Title, route, newVoteData(topic)))
}

// Submit handles POST /vote
// The choice is checked against the topic's options before anything is sent.
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.message(w, r, http.StatusBadRequest, nav.Landing(), "Invalid form.", "")
		return
	}

	topicID := nav.ParseID(r.PostFormValue("topic_id"))
	if topicID == 0 {
		h.badRoute(w, r, &nav.ParamError{Param: "topic_id"})
		return
	}
	route := nav.Vote(topicID)
	choice, _ := strconv.Atoi(r.PostFormValue("vote_choice"))

	topic, err := h.api.GetTopic(r.Context(), topicID)
	if r.Context().Err() != nil {
		return
	}
	if err != nil {
		h.topicFailed(w, r, route, err)
		return
	}

	data := newVoteData(topic)
	kind := views.TopicKind(topic)
	if !views.ValidChoice(kind, choice) {
		slog.Info("vote rejected: invalid choice", "topic_id", topicID, "vote_choice", r.PostFormValue("vote_choice"))
		data.Error = msgChooseOption
		h.render.Render(w, http.StatusBadRequest, "vote", h.page(r, topic.Title, route, data))
		return
	}

	receipt, err := h.api.SubmitVote(r.Context(), topicID, choice)
	if r.Context().Err() != nil {
		return
	}
	if err != nil {
		slog.Error("failed to submit vote", "topic_id", topicID, "vote_choice", choice, "error", err)
		data.Selected = choice
		data.Error = msgVoteFailed
		h.render.Render(w, http.StatusBadGateway, "vote", h.page(r, topic.Title, route, data))
		return
	}

	slog.Info("vote submitted", "topic_id", topicID, "vote_id", receipt.ID, "vote_choice", choice)
	http.Redirect(w, r, nav.Result(topicID, receipt.ID).URL(), http.StatusSeeOther)
}

func (h *VoteHandler) topicFailed(w http.ResponseWriter, r *http.Request, route nav.Route, err error) {
	text, status, retry := failure("topic", err)
	reload := ""
	if retry {
		reload = route.URL()
	}
	h.message(w, r, status, route, text, reload)
}
