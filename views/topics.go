// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/your-pick/models"
)

// FilterAll disables a facet filter
const FilterAll = "ALL"

type SortKey string

const (
	SortNewest SortKey = "NEW"
	SortOldest SortKey = "OLD"
)

type TopicFilter struct {
	Query       string
	Episode     string
	MatchType   string
	Participant string
	Sort        SortKey
}

// ParseTopicFilter reads filter controls from a query string; anything
// missing or unrecognized falls back to ALL / newest first.
func ParseTopicFilter(q url.Values) TopicFilter {
	f := TopicFilter{
		Query:       strings.TrimSpace(q.Get("q")),
		Episode:     orAll(q.Get("episode")),
		MatchType:   orAll(q.Get("match_type")),
		Participant: orAll(q.Get("participant")),
		Sort:        SortNewest,
	}
	if SortKey(q.Get("sort")) == SortOldest {
		f.Sort = SortOldest
	}
	return f
}

func orAll(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return FilterAll
	}
	return s
}

// IsDefault reports whether the filter shows everything newest first
func (f TopicFilter) IsDefault() bool {
	return f.Query == "" && f.Episode == FilterAll && f.MatchType == FilterAll &&
		f.Participant == FilterAll && f.Sort == SortNewest
}

// FilterTopics applies facet filters and free text, then sorts by created_at.
// The input slice is not modified.
func FilterTopics(topics []models.Topic, f TopicFilter) []models.Topic {
	keyword := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Topic, 0, len(topics))
	for _, t := range topics {
		if f.Episode != "" && f.Episode != FilterAll && strconv.Itoa(t.Episode) != f.Episode {
			continue
		}
		if f.MatchType != "" && f.MatchType != FilterAll && t.MatchType != f.MatchType {
			continue
		}
		if f.Participant != "" && f.Participant != FilterAll && !contains(t.Participants, f.Participant) {
			continue
		}
		if keyword != "" {
			hay := strings.Join(append([]string{t.Title, t.MatchType, strconv.Itoa(t.Episode)}, t.Participants...), " ")
			if !strings.Contains(strings.ToLower(hay), keyword) {
				continue
			}
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := ParseTimestamp(out[i].CreatedAt)
		tj, _ := ParseTimestamp(out[j].CreatedAt)
		if f.Sort == SortOldest {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Facets holds the distinct values offered by the topic filter controls
type Facets struct {
	Episodes     []int
	MatchTypes   []string
	Participants []string
}

func TopicFacets(topics []models.Topic) Facets {
	episodes := map[int]bool{}
	matchTypes := map[string]bool{}
	participants := map[string]bool{}
	for _, t := range topics {
		episodes[t.Episode] = true
		if t.MatchType != "" {
			matchTypes[t.MatchType] = true
		}
		for _, p := range t.Participants {
			participants[p] = true
		}
	}

	f := Facets{}
	for e := range episodes {
		f.Episodes = append(f.Episodes, e)
	}
	sort.Ints(f.Episodes)
	f.MatchTypes = sortedKeys(matchTypes)
	f.Participants = sortedKeys(participants)
	return f
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilterPrograms keeps programs whose title contains q, case-insensitively
func FilterPrograms(programs []models.Program, q string) []models.Program {
	keyword := strings.ToLower(strings.TrimSpace(q))
	if keyword == "" {
		return programs
	}
	out := make([]models.Program, 0, len(programs))
	for _, p := range programs {
		if strings.Contains(strings.ToLower(p.Title), keyword) {
			out = append(out, p)
		}
	}
	return out
}

// StatusLabel is the badge text for a program status
func StatusLabel(p models.Program) string {
	switch p.Status {
	case models.StatusOngoing:
		return "On air"
	case models.StatusUpcoming:
		return "Upcoming"
	case models.StatusEnded:
		return "Ended"
	}
	if p.StatusLabel == "" {
		return "Status"
	}
	return p.StatusLabel
}
