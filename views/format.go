// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// timestamp layouts seen from the API; TZ-less values are read as local time
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CalcPercent returns votes/total as a percentage with one decimal place.
// A zero total yields 0.
func CalcPercent(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*1000) / 10
}

// FormatPercent renders 33.3 as "33.3%" and 50 as "50%"
func FormatPercent(p float64) string {
	return humanize.FtoaWithDigits(p, 1) + "%"
}

// FormatCount renders vote totals with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// ParseTimestamp reads the API's created_at style values
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatRelative renders "N minutes ago" style text for the last 24 hours and
// a plain date beyond that. Future timestamps get the full date and time.
func FormatRelative(ts string, now time.Time) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return ts
	}

	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("2006-01-02 15:04:05")
	case diff < 24*time.Hour:
		return humanize.RelTime(t, now, "ago", "from now")
	default:
		return t.Format("2006-01-02")
	}
}
