// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/url"
	"strings"
)

// EmbedURL converts YouTube watch and youtu.be links to embed links.
// Anything unrecognized is returned unchanged.
func EmbedURL(videoURL string) string {
	u, err := url.Parse(videoURL)
	if err != nil || u.Host == "" {
		return videoURL
	}
	if strings.HasPrefix(u.Path, "/embed/") {
		return videoURL
	}
	if u.Hostname() == "youtu.be" {
		id := strings.Trim(u.Path, "/")
		if id == "" {
			return videoURL
		}
		return "https://www.youtube.com/embed/" + id
	}
	if v := u.Query().Get("v"); v != "" {
		return "https://www.youtube.com/embed/" + v
	}
	return videoURL
}
