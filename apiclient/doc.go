// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the HTTP client for the external voting API.

	client := apiclient.New("http://localhost:8000", 10*time.Second)
	topics, err := client.ListTopics(ctx, programID)

Every method takes the caller's context, so a page request that is abandoned
cancels its upstream calls. There is no retry and no caching.

# Errors

Non-2xx responses return *APIError carrying the status and body. A 404 also
matches ErrNotFound:

	if errors.Is(err, apiclient.ErrNotFound) { ... }

Payload problems surface as *normalize.Error. A delete answered with
success:false returns ErrRejected.
*/
package apiclient
