// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the page handlers of the Your Pick web client.

# Handler Types

Each handler embeds the shared page plumbing (API, guard, renderer):

  - BrowseHandler: landing, program list and topic list
  - VoteHandler: vote form and vote submission
  - ResultHandler: tally, comment list, comment create and delete

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(api, store, render)

# Page Loads

Every page load takes a ticket from the Guard before fetching and commits it
before rendering. Commit records the route as the viewer's current page and
pushes it on the back-link history, but only for the newest load; a load
overtaken by another tab still renders its own page. A request whose client
has gone away renders nothing.

# Failures

Fetch errors become a message with a Reload link. A 404 from the API is
shown as "<Thing> not found." without one. Mutations never retry.
*/
package handlers
