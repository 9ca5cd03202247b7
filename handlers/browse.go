// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/danielhkuo/your-pick/models"
	"github.com/danielhkuo/your-pick/nav"
	"github.com/danielhkuo/your-pick/views"
	"github.com/danielhkuo/your-pick/web"
)

type BrowseHandler struct {
	pages
}

func NewBrowseHandler(api API, guard Guard, render *web.Renderer) *BrowseHandler {
	return &BrowseHandler{pages{api: api, guard: guard, render: render}}
}

// Landing handles GET /
func (h *BrowseHandler) Landing(w http.ResponseWriter, r *http.Request) {
	route := nav.Landing()
	l := h.begin(r, route)
	if !h.finish(r, l) {
		return
	}
	h.render.Render(w, http.StatusOK, "landing", h.page(r, "", route, nil))
}

type programCard struct {
	Title       string
	Description string
	Status      string
	StatusClass string
	ImageURL    string
	URL         string // empty when the id cannot address a topic list
}

type programsData struct {
	Query    string
	Programs []programCard
	Error    string
	Reload   string
}

// Programs handles GET /programs
// Lists programs, optionally filtered by ?q= on the title
func (h *BrowseHandler) Programs(w http.ResponseWriter, r *http.Request) {
	route := nav.Programs()
	l := h.begin(r, route)

	programs, err := h.api.ListPrograms(r.Context())
	if !h.finish(r, l) {
		return
	}

	data := programsData{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	status := http.StatusOK
	if err != nil {
		var retry bool
		data.Error, status, retry = failure("programs", err)
		if retry {
			data.Reload = r.URL.RequestURI()
		}
	} else {
		for _, p := range views.FilterPrograms(programs, data.Query) {
			data.Programs = append(data.Programs, newProgramCard(p))
		}
	}

	h.render.Render(w, status, "programs", h.page(r, "Programs", route, data))
}

func newProgramCard(p models.Program) programCard {
	card := programCard{
		Title:       p.Title,
		Description: p.Description,
		Status:      views.StatusLabel(p),
		StatusClass: string(p.Status),
		ImageURL:    p.ImageURL,
	}
	if id := nav.ParseID(p.ID); id > 0 {
		card.URL = nav.Topics(id).URL()
	}
	return card
}

type topicCard struct {
	Title        string
	Episode      int
	MatchType    string
	Participants string
	URL          string
}

type topicsData struct {
	ProgramID    int
	Program      models.Program
	ProgramError string
	Filter       views.TopicFilter
	Filtered     bool
	Facets       views.Facets
	Topics       []topicCard
	TopicsError  string
	Reload       string
}

// Topics handles GET /topics?program_id=
// Program metadata and the topic list load concurrently and fail independently.
func (h *BrowseHandler) Topics(w http.ResponseWriter, r *http.Request) {
	route, err := nav.Parse(r.URL)
	if err != nil {
		h.badRoute(w, r, err)
		return
	}
	l := h.begin(r, route)

	var (
		wg               sync.WaitGroup
		program          models.Program
		topics           []models.Topic
		programErr, tErr error
	)
	wg.Go(func() {
		program, programErr = h.api.GetProgram(r.Context(), route.ProgramID)
	})
	wg.Go(func() {
		topics, tErr = h.api.ListTopics(r.Context(), route.ProgramID)
	})
	wg.Wait()

	if !h.finish(r, l) {
		return
	}

	data := topicsData{
		ProgramID: route.ProgramID,
		Program:   program,
		Filter:    views.ParseTopicFilter(r.URL.Query()),
	}
	data.Filtered = !data.Filter.IsDefault()

	title := program.Title
	if programErr != nil {
		data.ProgramError, _, _ = failure("program", programErr)
		title = "Program"
	}

	status := http.StatusOK
	if tErr != nil {
		var retry bool
		data.TopicsError, status, retry = failure("topics", tErr)
		if retry {
			data.Reload = r.URL.RequestURI()
		}
	} else {
		data.Facets = views.TopicFacets(topics)
		for _, t := range views.FilterTopics(topics, data.Filter) {
			data.Topics = append(data.Topics, topicCard{
				Title:        t.Title,
				Episode:      t.Episode,
				MatchType:    t.MatchType,
				Participants: strings.Join(t.Participants, " vs "),
				URL:          nav.Vote(t.ID).URL(),
			})
		}
	}

	h.render.Render(w, status, "topics", h.page(r, title, route, data))
}
