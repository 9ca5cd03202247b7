// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/your-pick/models"
)

func intPtr(n int) *int { return &n }

func TestOptionsBinary(t *testing.T) {
	kind := KindOf(models.VoteTypeBinary, []string{"X"}, []models.ParticipantImage{
		{ParticipantName: "X", ImageURL: "x.png"},
	})

	opts := Options(kind)
	if len(opts) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(opts))
	}
	if opts[0].Label != "Pass" || opts[0].Value != 1 {
		t.Errorf("Expected Pass=1, got %+v", opts[0])
	}
	if opts[1].Label != "Fail" || opts[1].Value != 2 {
		t.Errorf("Expected Fail=2, got %+v", opts[1])
	}
	for _, opt := range opts {
		if opt.Sub != "X" || opt.Image != "x.png" {
			t.Errorf("Expected sub-label X with image, got %+v", opt)
		}
	}
}

func TestOptionsBinaryWithoutParticipant(t *testing.T) {
	opts := Options(KindOf(models.VoteTypeBinary, nil, nil))
	if len(opts) != 2 || opts[0].Sub != placeholderName {
		t.Errorf("Expected placeholder participant, got %+v", opts)
	}
}

func TestOptionsChoice(t *testing.T) {
	opts := Options(KindOf(3, []string{"A", "B", "C"}, nil))
	if len(opts) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(opts))
	}
	for i, want := range []string{"A", "B", "C"} {
		if opts[i].Label != want || opts[i].Value != i+1 {
			t.Errorf("option %d: expected %s=%d, got %+v", i, want, i+1, opts[i])
		}
	}

	if got := Options(KindOf(2, nil, nil)); len(got) != 0 {
		t.Errorf("Expected zero options for zero participants, got %d", len(got))
	}
}

func TestValidChoice(t *testing.T) {
	binary := KindOf(models.VoteTypeBinary, []string{"X"}, nil)
	choice := KindOf(3, []string{"A", "B", "C"}, nil)

	testCases := []struct {
		kind  VoteKind
		value int
		want  bool
	}{
		{binary, 1, true},
		{binary, 2, true},
		{binary, 3, false},
		{choice, 0, false},
		{choice, 3, true},
		{choice, 4, false},
	}
	for _, tc := range testCases {
		if got := ValidChoice(tc.kind, tc.value); got != tc.want {
			t.Errorf("ValidChoice(%T, %d) = %v, want %v", tc.kind, tc.value, got, tc.want)
		}
	}
}

// A submitted vote_choice must be read back as the same participant
func TestOptionsInverseOfResults(t *testing.T) {
	participants := []string{"A", "B", "C"}
	opts := Options(KindOf(3, participants, nil))
	choice := opts[1].Value

	agg := models.ResultAggregate{
		VoteType:     3,
		Participants: participants,
		Total:        5,
		HasTotal:     true,
		Tally:        map[int]models.TallyEntry{choice: {Count: 5, Percent: 100, HasPercent: true}},
	}
	view := BuildResult(agg)

	if view.Bars[0].Label != "B" || view.Bars[0].Votes != 5 || view.Bars[0].Percent != 100 {
		t.Errorf("Expected all 5 votes on B, got %+v", view.Bars[0])
	}
	for _, bar := range view.Bars[1:] {
		if bar.Votes != 0 {
			t.Errorf("Expected no votes on %s, got %d", bar.Label, bar.Votes)
		}
	}
}

func TestBuildResultZeroFill(t *testing.T) {
	agg := models.ResultAggregate{
		VoteType:     3,
		Participants: []string{"A", "B", "C"},
		Tally: map[int]models.TallyEntry{
			1: {Count: 2},
			2: {Count: 1},
		},
	}
	view := BuildResult(agg)

	if len(view.Bars) != 3 {
		t.Fatalf("Expected a bar per participant, got %d", len(view.Bars))
	}
	last := view.Bars[2]
	if last.Label != "C" || last.Votes != 0 || last.Percent != 0 {
		t.Errorf("Expected C at 0 votes / 0%%, got %+v", last)
	}
	if view.Total != 3 {
		t.Errorf("Expected total summed from tally, got %d", view.Total)
	}
	if view.Bars[0].Percent != 66.7 || view.Bars[1].Percent != 33.3 {
		t.Errorf("Expected computed percents 66.7/33.3, got %v/%v", view.Bars[0].Percent, view.Bars[1].Percent)
	}
}

func TestBuildResultSorting(t *testing.T) {
	agg := models.ResultAggregate{
		VoteType:     3,
		Participants: []string{"A", "B", "C"},
		Tally: map[int]models.TallyEntry{
			1: {Count: 10},
			2: {Count: 20},
			3: {Count: 5},
		},
	}
	view := BuildResult(agg)

	got := []string{view.Bars[0].Label, view.Bars[1].Label, view.Bars[2].Label}
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestBuildResultTiesKeepOptionOrder(t *testing.T) {
	agg := models.ResultAggregate{
		VoteType:     4,
		Participants: []string{"A", "B", "C", "D"},
		Tally: map[int]models.TallyEntry{
			2: {Count: 3},
			3: {Count: 3},
			4: {Count: 7},
		},
	}
	view := BuildResult(agg)

	want := []string{"D", "B", "C", "A"}
	for i, label := range want {
		if view.Bars[i].Label != label {
			t.Errorf("position %d: expected %s, got %s", i, label, view.Bars[i].Label)
		}
	}
}

func TestBuildResultBinaryLabels(t *testing.T) {
	agg := models.ResultAggregate{
		VoteType:     models.VoteTypeBinary,
		Participants: []string{"X"},
		ActualResult: intPtr(2),
		Match:        true,
		Tally: map[int]models.TallyEntry{
			1: {Count: 1},
			2: {Count: 3},
		},
	}
	view := BuildResult(agg)

	if len(view.Bars) != 2 || view.Bars[0].Label != "Fail" || view.Bars[1].Label != "Pass" {
		t.Errorf("Expected Fail then Pass bars, got %+v", view.Bars)
	}
	if view.Broadcast == nil || view.Broadcast.Winner != "Fail" || !view.Broadcast.Match {
		t.Errorf("Expected broadcast Fail with match, got %+v", view.Broadcast)
	}
}

func TestBuildResultBroadcast(t *testing.T) {
	participants := []string{"A", "B"}
	testCases := []struct {
		name       string
		actual     *int
		wantWinner string
	}{
		{"no result", nil, ""},
		{"zero result", intPtr(0), ""},
		{"second participant", intPtr(2), "B"},
		{"out of range", intPtr(9), "Winner"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view := BuildResult(models.ResultAggregate{
				VoteType:     2,
				Participants: participants,
				ActualResult: tc.actual,
			})
			if tc.wantWinner == "" {
				if view.Broadcast != nil {
					t.Errorf("Expected no broadcast section, got %+v", view.Broadcast)
				}
				return
			}
			if view.Broadcast == nil || view.Broadcast.Winner != tc.wantWinner {
				t.Errorf("Expected winner %q, got %+v", tc.wantWinner, view.Broadcast)
			}
		})
	}
}

func TestBuildResultServerTotalWins(t *testing.T) {
	view := BuildResult(models.ResultAggregate{
		VoteType:     2,
		Participants: []string{"A", "B"},
		Total:        10,
		HasTotal:     true,
		Tally:        map[int]models.TallyEntry{1: {Count: 4}},
	})
	if view.Total != 10 || view.Bars[0].Percent != 40 {
		t.Errorf("Expected total 10 and 40%%, got %d / %v", view.Total, view.Bars[0].Percent)
	}
	if view.Title != "Result" {
		t.Errorf("Expected fallback title, got %q", view.Title)
	}
}

func TestCalcPercent(t *testing.T) {
	testCases := []struct {
		votes, total int
		want         float64
	}{
		{1, 3, 33.3},
		{0, 0, 0},
		{5, 0, 0},
		{2, 3, 66.7},
		{1, 1, 100},
		{1, 8, 12.5},
	}
	for _, tc := range testCases {
		if got := CalcPercent(tc.votes, tc.total); got != tc.want {
			t.Errorf("CalcPercent(%d, %d) = %v, want %v", tc.votes, tc.total, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(33.3); got != "33.3%" {
		t.Errorf("Expected 33.3%%, got %s", got)
	}
	if got := FormatPercent(50); got != "50%" {
		t.Errorf("Expected 50%%, got %s", got)
	}
	if got := FormatCount(12345); got != "12,345" {
		t.Errorf("Expected 12,345, got %s", got)
	}
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name string
		ts   string
		want string
	}{
		{"seconds", "2026-03-10T11:59:30Z", "30 seconds ago"},
		{"minutes", "2026-03-10T11:55:00Z", "5 minutes ago"},
		{"hours", "2026-03-10T09:00:00Z", "3 hours ago"},
		{"days", "2026-03-08T12:00:00Z", "2026-03-08"},
		{"future", "2026-03-10T13:00:00Z", "2026-03-10 13:00:00"},
		{"garbage", "yesterday", "yesterday"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatRelative(tc.ts, now); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFilterTopics(t *testing.T) {
	topics := []models.Topic{
		{ID: 1, Episode: 1, MatchType: "Round 1", Title: "Opening", Participants: []string{"A", "B"}, CreatedAt: "2026-01-01T00:00:00"},
		{ID: 2, Episode: 2, MatchType: "Final", Title: "Showdown", Participants: []string{"B", "C"}, CreatedAt: "2026-01-03T00:00:00"},
		{ID: 3, Episode: 2, MatchType: "Round 1", Title: "Rematch", Participants: []string{"A", "C"}, CreatedAt: "2026-01-02T00:00:00"},
	}

	testCases := []struct {
		name   string
		filter TopicFilter
		want   []int
	}{
		{"default newest", ParseTopicFilter(url.Values{}), []int{2, 3, 1}},
		{"oldest", ParseTopicFilter(url.Values{"sort": {"OLD"}}), []int{1, 3, 2}},
		{"episode", ParseTopicFilter(url.Values{"episode": {"2"}}), []int{2, 3}},
		{"match type", ParseTopicFilter(url.Values{"match_type": {"Round 1"}}), []int{3, 1}},
		{"participant", ParseTopicFilter(url.Values{"participant": {"A"}}), []int{3, 1}},
		{"free text title", ParseTopicFilter(url.Values{"q": {"SHOW"}}), []int{2}},
		{"free text participant", ParseTopicFilter(url.Values{"q": {"c"}}), []int{2, 3}},
		{"combined", ParseTopicFilter(url.Values{"episode": {"2"}, "participant": {"A"}}), []int{3}},
		{"no match", ParseTopicFilter(url.Values{"q": {"zzz"}}), []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTopics(topics, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %v, got %d topics", tc.want, len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected topic %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}

	if topics[0].ID != 1 {
		t.Error("FilterTopics must not reorder its input")
	}
}

func TestTopicFacets(t *testing.T) {
	f := TopicFacets([]models.Topic{
		{Episode: 3, MatchType: "Final", Participants: []string{"C", "A"}},
		{Episode: 1, MatchType: "Round 1", Participants: []string{"B", "A"}},
		{Episode: 3, MatchType: "Final"},
	})

	if len(f.Episodes) != 2 || f.Episodes[0] != 1 || f.Episodes[1] != 3 {
		t.Errorf("Unexpected episodes %v", f.Episodes)
	}
	if len(f.MatchTypes) != 2 || f.MatchTypes[0] != "Final" {
		t.Errorf("Unexpected match types %v", f.MatchTypes)
	}
	if len(f.Participants) != 3 || f.Participants[0] != "A" || f.Participants[2] != "C" {
		t.Errorf("Unexpected participants %v", f.Participants)
	}
}

func TestFilterPrograms(t *testing.T) {
	programs := []models.Program{{ID: "1", Title: "Culinary Class Wars"}, {ID: "2", Title: "Physical 100"}}

	if got := FilterPrograms(programs, "  "); len(got) != 2 {
		t.Errorf("Expected all programs for blank query, got %d", len(got))
	}
	if got := FilterPrograms(programs, "CULINARY"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Expected case-insensitive title match, got %+v", got)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(models.Program{Status: models.StatusOngoing}); got != "On air" {
		t.Errorf("Expected On air, got %s", got)
	}
	if got := StatusLabel(models.Program{Status: models.StatusUnknown, StatusLabel: "HIATUS"}); got != "HIATUS" {
		t.Errorf("Expected raw label, got %s", got)
	}
}

func TestEmbedURL(t *testing.T) {
	testCases := map[string]string{
		"https://www.youtube.com/watch?v=abc123": "https://www.youtube.com/embed/abc123",
		"https://youtu.be/abc123":                "https://www.youtube.com/embed/abc123",
		"https://www.youtube.com/embed/abc123":   "https://www.youtube.com/embed/abc123",
		"https://vimeo.com/1234":                 "https://vimeo.com/1234",
		"not a url":                              "not a url",
	}
	for in, want := range testCases {
		if got := EmbedURL(in); got != want {
			t.Errorf("EmbedURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestComposer(t *testing.T) {
	c := Composer{Form: CommentForm{Author: " kim ", Password: "", Content: "hi"}}
	blocked, ok := c.Submit(7)
	if ok {
		t.Fatal("Expected empty password to block submission")
	}
	if blocked.Error != MsgFormIncomplete || blocked.Form.Content != "hi" {
		t.Errorf("Expected incomplete message keeping inputs, got %+v", blocked)
	}

	c.Form.Password = "pw"
	if _, ok := c.Submit(0); ok {
		t.Fatal("Expected missing vote id to block submission")
	}

	submitting, ok := c.Submit(7)
	if !ok || submitting.State != CreateSubmitting || submitting.Form.Author != "kim" {
		t.Fatalf("Expected trimmed submitting state, got %+v", submitting)
	}
	if _, again := submitting.Submit(7); again {
		t.Error("Expected no double submission while submitting")
	}

	failed := submitting.Resolve(errors.New("boom"))
	if failed.State != CreateError || failed.Error != MsgPostFailed || failed.Form.Content != "hi" {
		t.Errorf("Expected error state keeping inputs, got %+v", failed)
	}

	done := submitting.Resolve(nil)
	if done.State != CreateIdle || done.Form != (CommentForm{}) {
		t.Errorf("Expected cleared idle state, got %+v", done)
	}
}

func TestDeletion(t *testing.T) {
	d := StartDelete(4)
	if d.State != DeleteConfirming {
		t.Fatalf("Expected confirming, got %v", d.State)
	}

	blank, call := d.Submit("   ")
	if call || blank.State != DeleteConfirming || blank.Error != MsgPasswordRequired {
		t.Errorf("Expected blank password to stay confirming, got %+v call=%v", blank, call)
	}

	deleting, call := d.Submit("pw")
	if !call || deleting.State != DeleteDeleting {
		t.Fatalf("Expected deleting, got %+v", deleting)
	}

	retry := deleting.Resolve(errors.New("403"))
	if retry.State != DeleteConfirming || retry.Error != MsgDeleteFailed {
		t.Errorf("Expected failure back to confirming, got %+v", retry)
	}

	removed := deleting.Resolve(nil)
	if removed.State != DeleteRemoved || removed.CommentID != 4 {
		t.Errorf("Expected removed, got %+v", removed)
	}

	if _, call := (Deletion{State: DeleteIdle}).Submit("pw"); call {
		t.Error("Expected idle deletion to ignore submit")
	}
}
