// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

// MaxHistory bounds how many routes a viewer's history keeps
const MaxHistory = 20

// History is a viewer's navigation stack, oldest first
type History []Route

// Push appends r unless it equals the current top, trimming to MaxHistory.
func (h History) Push(r Route) History {
	if n := len(h); n > 0 && h[n-1] == r {
		return h
	}
	out := append(append(History{}, h...), r)
	if len(out) > MaxHistory {
		out = out[len(out)-MaxHistory:]
	}
	return out
}

// Back returns the route before current, falling back to the parent page
func (h History) Back(current Route) Route {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i] != current {
			return h[i]
		}
	}
	return Parent(current)
}

// Parent is the page one step up the natural flow. Vote and Result need the
// topic's program id to go further up, which a route alone does not carry.
func Parent(r Route) Route {
	switch r.Page {
	case PageTopics:
		return Programs()
	case PageVote:
		return Programs()
	case PageResult:
		return Vote(r.TopicID)
	}
	return Landing()
}
