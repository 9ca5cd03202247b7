// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package nav defines the typed routes that carry state between pages.

Each page's parameters are parsed once and rendered back by the same type:

	route, err := nav.Parse(r.URL)  // /result?topic_id=5&vote_id=7
	http.Redirect(w, r, nav.Result(5, receipt.ID).URL(), http.StatusSeeOther)

Required ids must be positive integers; otherwise Parse returns *ParamError.
Unknown paths return ErrUnknownPath.

History is a bounded navigation stack stored per viewer session and used for
back links.
*/
package nav
