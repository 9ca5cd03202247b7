// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package normalize

import (
	"strconv"

	"github.com/danielhkuo/your-pick/models"
)

// Programs normalizes GET /programs. Records without id or title are dropped.
func Programs(raw []byte) ([]models.Program, error) {
	v, err := parse("programs", raw)
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		if err := checkSuccess("programs", m); err != nil {
			return nil, err
		}
	}
	items, ok := listOf(v, "programs")
	if !ok {
		return nil, malformed("programs", "expected an array of programs")
	}

	programs := make([]models.Program, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := program(m)
		if p.ID == "" || p.Title == "" {
			continue
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// Program normalizes GET /programs/{id}
func Program(raw []byte) (models.Program, error) {
	v, err := parse("program", raw)
	if err != nil {
		return models.Program{}, err
	}
	m, ok := objectOf(v)
	if !ok {
		return models.Program{}, malformed("program", "expected an object")
	}
	if err := checkSuccess("program", v.(map[string]any)); err != nil {
		return models.Program{}, err
	}
	p := program(m)
	if p.ID == "" || p.Title == "" {
		return models.Program{}, malformed("program", "missing id or title")
	}
	return p, nil
}

func program(m map[string]any) models.Program {
	label := asString(pick(m, "status", "state"))
	if label == "" {
		label = "UNKNOWN"
	}
	return models.Program{
		ID:          asString(pick(m, "id", "program_id", "programId", "_id")),
		Title:       asString(pick(m, "title", "name")),
		Description: asString(pick(m, "description", "desc")),
		Status:      models.ParseProgramStatus(label),
		StatusLabel: label,
		ImageURL:    asString(pick(m, "image_url", "imgUrl", "imageUrl", "thumbnail")),
		CreatedAt:   asString(pick(m, "created_at", "createdAt")),
	}
}

// Topics normalizes GET /topics?program_id=. Records without id or title are dropped.
func Topics(raw []byte) ([]models.Topic, error) {
	v, err := parse("topics", raw)
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		if err := checkSuccess("topics", m); err != nil {
			return nil, err
		}
	}
	items, ok := listOf(v, "topics")
	if !ok {
		return nil, malformed("topics", "expected an array of topics")
	}

	topics := make([]models.Topic, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		t := topic(m)
		if t.ID == 0 || t.Title == "" {
			continue
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// Topic normalizes GET /topics/{id}
func Topic(raw []byte) (models.Topic, error) {
	v, err := parse("topic", raw)
	if err != nil {
		return models.Topic{}, err
	}
	m, ok := objectOf(v)
	if !ok {
		return models.Topic{}, malformed("topic", "expected an object")
	}
	if err := checkSuccess("topic", v.(map[string]any)); err != nil {
		return models.Topic{}, err
	}
	t := topic(m)
	if t.ID == 0 {
		return models.Topic{}, malformed("topic", "missing id")
	}
	return t, nil
}

func topic(m map[string]any) models.Topic {
	t := models.Topic{
		ID:                asInt(pick(m, "id", "topic_id", "topicId")),
		ProgramID:         asInt(pick(m, "program_id", "programId")),
		Episode:           asInt(pick(m, "episode", "episode_no")),
		MatchType:         asString(pick(m, "match_type", "matchType", "round")),
		Title:             asString(pick(m, "topic_title", "title", "name")),
		Participants:      asStrings(pick(m, "participants")),
		VideoURL:          asString(pick(m, "video_url", "videoUrl")),
		VoteType:          asInt(pick(m, "vote_type", "voteType")),
		ActualResult:      asOptionalInt(pick(m, "actual_result", "actualResult")),
		CreatedAt:         asString(pick(m, "created_at", "createdAt")),
		ParticipantImages: participantImages(pick(m, "participant_images", "participantImages")),
	}
	return t
}

func participantImages(v any) []models.ParticipantImage {
	arr, ok := v.([]any)
	if !ok {
		return []models.ParticipantImage{}
	}
	out := make([]models.ParticipantImage, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		img := models.ParticipantImage{
			ID:              asInt(pick(m, "id")),
			ParticipantName: asString(pick(m, "participant_name", "participantName", "name")),
			ImageURL:        asString(pick(m, "image_url", "imgUrl", "imageUrl")),
		}
		if img.ParticipantName == "" {
			continue
		}
		out = append(out, img)
	}
	return out
}

// Results normalizes GET /topics/{id}/results. Unlike list payloads, a
// missing data object is an error: there is nothing to render.
func Results(raw []byte) (models.ResultAggregate, error) {
	v, err := parse("results", raw)
	if err != nil {
		return models.ResultAggregate{}, err
	}
	env, ok := v.(map[string]any)
	if !ok {
		return models.ResultAggregate{}, malformed("results", "expected an object")
	}
	if err := checkSuccess("results", env); err != nil {
		return models.ResultAggregate{}, err
	}

	d := env
	if _, wrapped := env["data"]; wrapped {
		inner, ok := env["data"].(map[string]any)
		if !ok {
			return models.ResultAggregate{}, malformed("results", "data is missing")
		}
		d = inner
	}

	agg := models.ResultAggregate{
		TopicID:      asInt(pick(d, "topic_id", "topicId", "id")),
		TopicTitle:   asString(pick(d, "topic_title", "title")),
		VoteType:     asInt(pick(d, "vote_type", "voteType")),
		ActualResult: asOptionalInt(pick(d, "actual_result", "actualResult")),
		Participants: asStrings(pick(d, "participants")),
		Match:        asBool(pick(d, "match")),
		Tally:        map[int]models.TallyEntry{},
	}

	pv, _ := pick(d, "public_votes", "publicVotes").(map[string]any)
	if pv == nil {
		return agg, nil
	}
	if total, ok := asFloat(pick(pv, "total")); ok {
		agg.Total = int(total)
		agg.HasTotal = true
	}
	results, _ := pv["results"].(map[string]any)
	for key, entry := range results {
		choice, err := strconv.Atoi(key)
		if err != nil || choice < 1 {
			continue
		}
		em, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		te := models.TallyEntry{Count: asInt(pick(em, "count", "votes"))}
		if pct, ok := asFloat(pick(em, "percent", "percentage")); ok {
			te.Percent = pct
			te.HasPercent = true
		}
		agg.Tally[choice] = te
	}
	return agg, nil
}

// Comments normalizes GET /topics/{id}/comments, newest first by the API's order.
func Comments(raw []byte) ([]models.Comment, error) {
	v, err := parse("comments", raw)
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		if err := checkSuccess("comments", m); err != nil {
			return nil, err
		}
	}
	items, ok := listOf(v, "comments")
	if !ok {
		if _, isObject := v.(map[string]any); isObject {
			return []models.Comment{}, nil
		}
		return nil, malformed("comments", "expected an array of comments")
	}

	comments := make([]models.Comment, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		c := comment(m)
		if c.ID == 0 {
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Comment normalizes the POST /votes/{id}/comments response. The reply may
// omit the comment, so a missing id is not an error.
func Comment(raw []byte) (models.Comment, error) {
	v, err := parse("comment", raw)
	if err != nil {
		return models.Comment{}, err
	}
	m, ok := objectOf(v)
	if !ok {
		return models.Comment{}, malformed("comment", "expected an object")
	}
	if env, ok := v.(map[string]any); ok {
		if err := checkSuccess("comment", env); err != nil {
			return models.Comment{}, err
		}
	}
	return comment(m), nil
}

func comment(m map[string]any) models.Comment {
	return models.Comment{
		ID:        asInt(pick(m, "id", "comment_id", "commentId")),
		VoteID:    asInt(pick(m, "vote_id", "voteId")),
		Content:   asString(pick(m, "content", "text")),
		Author:    asString(pick(m, "comment_user_name", "author", "user_name", "userName")),
		CreatedAt: asString(pick(m, "created_at", "createdAt")),
	}
}

// VoteReceipt normalizes the POST /topics/{id}/votes response. success:false
// yields an *Error whose Reason is the server's message.
func VoteReceipt(raw []byte) (models.VoteReceipt, error) {
	v, err := parse("vote", raw)
	if err != nil {
		return models.VoteReceipt{}, err
	}
	env, ok := v.(map[string]any)
	if !ok {
		return models.VoteReceipt{}, malformed("vote", "expected an object")
	}
	if err := checkSuccess("vote", env); err != nil {
		return models.VoteReceipt{}, err
	}
	d, _ := objectOf(env)
	r := models.VoteReceipt{
		ID:         asInt(pick(d, "id", "vote_id", "voteId")),
		TopicID:    asInt(pick(d, "topic_id", "topicId")),
		VoteChoice: asInt(pick(d, "vote_choice", "voteChoice")),
		VotedAt:    asString(pick(d, "voted_at", "votedAt", "created_at")),
	}
	if r.ID == 0 {
		return models.VoteReceipt{}, malformed("vote", "missing vote id")
	}
	return r, nil
}

