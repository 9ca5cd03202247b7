// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Your Pick web client.

# Route Registration

NewRouter builds the handler tree: templates, API client, session store and
CSRF protection.

	handler, err := router.NewRouter(db, cfg)

# Endpoints

Infrastructure:

	GET /health   - Liveness probe, plain "OK"
	GET /static/  - Embedded stylesheet

Browsing:

	GET /                   - Landing page
	GET /programs[?q=]      - Program list with title search
	GET /topics?program_id= - Topics of one program with filters

Voting:

	GET  /vote?topic_id= - Vote form
	POST /vote           - Submit a choice, 303 to the result page

Results and comments:

	GET  /result?topic_id=[&vote_id=]          - Tally and comments
	POST /result/comments                      - Post a comment (needs vote_id)
	POST /result/comments/{id}/delete?topic_id= - Delete with password

Any other path redirects to /.

# Middleware

Page routes are wrapped with request logging and a viewer session cookie.
Every route sits behind gorilla/csrf; POSTs without a valid token get a 403
message page.
*/
package router
