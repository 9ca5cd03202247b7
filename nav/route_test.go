// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import (
	"errors"
	"net/url"
	"testing"
)

func TestRouteRoundTrip(t *testing.T) {
	routes := []Route{
		Landing(),
		Programs(),
		Topics(3),
		Vote(12),
		Result(12, 0),
		Result(12, 99),
	}

	for _, r := range routes {
		t.Run(r.URL(), func(t *testing.T) {
			u, err := url.Parse(r.URL())
			if err != nil {
				t.Fatalf("url.Parse failed: %v", err)
			}
			got, err := Parse(u)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got != r {
				t.Errorf("Expected %+v, got %+v", r, got)
			}
		})
	}
}

func TestRouteURL(t *testing.T) {
	if got := Result(5, 7).URL(); got != "/result?topic_id=5&vote_id=7" {
		t.Errorf("Unexpected URL %s", got)
	}
	if got := Topics(2).URL(); got != "/topics?program_id=2" {
		t.Errorf("Unexpected URL %s", got)
	}
	if got := Landing().URL(); got != "/" {
		t.Errorf("Unexpected URL %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		raw       string
		wantParam string
	}{
		{"/topics", "program_id"},
		{"/topics?program_id=abc", "program_id"},
		{"/vote?topic_id=0", "topic_id"},
		{"/result?topic_id=-4&vote_id=2", "topic_id"},
	}

	for _, tc := range testCases {
		u, _ := url.Parse(tc.raw)
		_, err := Parse(u)
		var perr *ParamError
		if !errors.As(err, &perr) || perr.Param != tc.wantParam {
			t.Errorf("%s: expected ParamError(%s), got %v", tc.raw, tc.wantParam, err)
		}
	}

	u, _ := url.Parse("/nowhere")
	if _, err := Parse(u); !errors.Is(err, ErrUnknownPath) {
		t.Errorf("Expected ErrUnknownPath, got %v", err)
	}
}

func TestParseResultVoteIDAlias(t *testing.T) {
	u, _ := url.Parse("/result?topic_id=4&voteId=8")
	r, err := Parse(u)
	if err != nil {
		t.Fatal(err)
	}
	if r.VoteID != 8 {
		t.Errorf("Expected voteId alias to be read, got %d", r.VoteID)
	}

	u, _ = url.Parse("/result?topic_id=4&vote_id=nope")
	r, _ = Parse(u)
	if r.VoteID != 0 {
		t.Errorf("Expected invalid vote_id to be dropped, got %d", r.VoteID)
	}
}

func TestHistory(t *testing.T) {
	var h History
	h = h.Push(Programs())
	h = h.Push(Topics(1))
	h = h.Push(Topics(1))
	h = h.Push(Vote(4))

	if len(h) != 3 {
		t.Fatalf("Expected duplicate top to be skipped, got %d entries", len(h))
	}
	if back := h.Back(Vote(4)); back != Topics(1) {
		t.Errorf("Expected back to Topics(1), got %+v", back)
	}
	if back := History(nil).Back(Result(4, 1)); back != Vote(4) {
		t.Errorf("Expected parent fallback, got %+v", back)
	}

	for i := 1; i <= MaxHistory+5; i++ {
		h = h.Push(Vote(i + 100))
	}
	if len(h) != MaxHistory {
		t.Errorf("Expected history capped at %d, got %d", MaxHistory, len(h))
	}
}
