// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions keeps per-browser navigation state in SQL.

# Viewer Sessions

A viewer session is identified by a uuid cookie and stores the viewer's
current route and a bounded navigation history:

	sess, created, err := store.Ensure(ctx, cookieValue, sessions.Meta{IPHash: hash})

# Ordering Page Loads

Every page load takes a ticket before calling the API and commits it after:

	ticket, err := store.Begin(ctx, sess.ID, nav.Vote(topicID))
	// ... fetch ...
	if err := store.Commit(ctx, ticket); errors.Is(err, sessions.ErrStale) {
		// a newer page load started; render, but leave history alone
	}

Begin increments the session generation, so any earlier ticket fails to
commit. Commit only updates the current route and history when the generation
still matches, which keeps a slow load in one tab from overwriting a newer
one in another.

# Pruning

Prune removes sessions idle since a cutoff. main runs it on a ticker.
*/
package sessions
