// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"sort"

	"github.com/danielhkuo/your-pick/models"
)

type Bar struct {
	Label    string
	Votes    int
	Percent  float64
	Position int // 1-based choice this bar counts
}

// Broadcast is the real-world outcome; it never carries a vote breakdown
type Broadcast struct {
	Winner string
	Match  bool
}

type ResultView struct {
	Title     string
	Total     int
	Bars      []Bar
	Broadcast *Broadcast // nil until the API reports an actual result
}

// BuildResult fills the sparse tally out to one bar per option, sorted by
// votes descending with ties kept in option order.
// Binary tallies are keyed by pass (1) and fail (2), not by participant.
func BuildResult(agg models.ResultAggregate) ResultView {
	kind := KindOf(agg.VoteType, agg.Participants, nil)
	opts := Options(kind)

	total := agg.Total
	if !agg.HasTotal {
		total = 0
		for _, e := range agg.Tally {
			total += e.Count
		}
	}

	bars := make([]Bar, 0, len(opts))
	for _, opt := range opts {
		entry := agg.Tally[opt.Value]
		pct := CalcPercent(entry.Count, total)
		if entry.HasPercent {
			pct = entry.Percent
		}
		bars = append(bars, Bar{
			Label:    opt.Label,
			Votes:    entry.Count,
			Percent:  pct,
			Position: opt.Value,
		})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Votes > bars[j].Votes
	})

	title := agg.TopicTitle
	if title == "" {
		title = "Result"
	}

	view := ResultView{Title: title, Total: total, Bars: bars}
	if winner := WinnerLabel(kind, agg.ActualResult); winner != "" {
		view.Broadcast = &Broadcast{Winner: winner, Match: agg.Match}
	}
	return view
}

// WinnerLabel names the broadcast outcome, or "" when there is none yet
func WinnerLabel(kind VoteKind, actual *int) string {
	if actual == nil || *actual == 0 {
		return ""
	}
	if _, ok := kind.(Binary); ok {
		if *actual == models.ChoicePass {
			return "Pass"
		}
		return "Fail"
	}
	for _, opt := range Options(kind) {
		if opt.Value == *actual {
			return opt.Label
		}
	}
	return "Winner"
}
