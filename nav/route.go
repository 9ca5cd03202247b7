// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type Page string

const (
	PageLanding  Page = "landing"
	PagePrograms Page = "programs"
	PageTopics   Page = "topics"
	PageVote     Page = "vote"
	PageResult   Page = "result"
)

var ErrUnknownPath = errors.New("unknown path")

// ParamError reports a missing or non-positive route parameter
type ParamError struct {
	Param string
}

func (e *ParamError) Error() string {
	return e.Param + " is missing"
}

// Route is a page plus its typed parameters. Only the fields the page uses are set.
type Route struct {
	Page      Page `json:"page"`
	ProgramID int  `json:"program_id,omitempty"`
	TopicID   int  `json:"topic_id,omitempty"`
	VoteID    int  `json:"vote_id,omitempty"`
}

func Landing() Route                   { return Route{Page: PageLanding} }
func Programs() Route                  { return Route{Page: PagePrograms} }
func Topics(programID int) Route       { return Route{Page: PageTopics, ProgramID: programID} }
func Vote(topicID int) Route           { return Route{Page: PageVote, TopicID: topicID} }
func Result(topicID, voteID int) Route { return Route{Page: PageResult, TopicID: topicID, VoteID: voteID} }

// Path is the route's URL path without query parameters
func (r Route) Path() string {
	switch r.Page {
	case PagePrograms:
		return "/programs"
	case PageTopics:
		return "/topics"
	case PageVote:
		return "/vote"
	case PageResult:
		return "/result"
	}
	return "/"
}

// URL renders the route with its query string
func (r Route) URL() string {
	q := url.Values{}
	switch r.Page {
	case PageTopics:
		q.Set("program_id", strconv.Itoa(r.ProgramID))
	case PageVote:
		q.Set("topic_id", strconv.Itoa(r.TopicID))
	case PageResult:
		q.Set("topic_id", strconv.Itoa(r.TopicID))
		if r.VoteID > 0 {
			q.Set("vote_id", strconv.Itoa(r.VoteID))
		}
	}
	if len(q) == 0 {
		return r.Path()
	}
	return r.Path() + "?" + q.Encode()
}

func (r Route) String() string {
	return r.URL()
}

// Parse reads a route from a request URL. Required ids must be positive
// integers; an optional vote_id that does not parse is dropped.
func Parse(u *url.URL) (Route, error) {
	q := u.Query()
	switch strings.TrimRight(u.Path, "/") {
	case "":
		return Landing(), nil
	case "/programs":
		return Programs(), nil
	case "/topics":
		id, err := requiredID(q, "program_id")
		if err != nil {
			return Route{}, err
		}
		return Topics(id), nil
	case "/vote":
		id, err := requiredID(q, "topic_id")
		if err != nil {
			return Route{}, err
		}
		return Vote(id), nil
	case "/result":
		id, err := requiredID(q, "topic_id")
		if err != nil {
			return Route{}, err
		}
		voteID := positive(q.Get("vote_id"))
		if voteID == 0 {
			voteID = positive(q.Get("voteId"))
		}
		return Result(id, voteID), nil
	}
	return Route{}, fmt.Errorf("%w: %s", ErrUnknownPath, u.Path)
}

// ParseID reads a positive integer id, returning 0 when it is absent or invalid
func ParseID(s string) int {
	return positive(s)
}

func requiredID(q url.Values, name string) (int, error) {
	id := positive(q.Get(name))
	if id == 0 {
		return 0, &ParamError{Param: name}
	}
	return id, nil
}

func positive(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
