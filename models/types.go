// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// Vote type constants (topic discriminant)
const (
	VoteTypeBinary = 1
	VoteTypeDuel   = 2
)

// Binary vote choices
const (
	ChoicePass = 1
	ChoiceFail = 2
)

// ProgramStatus is the normalized airing state of a program
type ProgramStatus string

const (
	StatusOngoing  ProgramStatus = "ongoing"
	StatusUpcoming ProgramStatus = "upcoming"
	StatusEnded    ProgramStatus = "ended"
	StatusUnknown  ProgramStatus = "unknown"
)

// ParseProgramStatus maps backend status labels (English or Korean) onto the enum.
func ParseProgramStatus(s string) ProgramStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ongoing", "on_air", "onair", "airing", "방영중":
		return StatusOngoing
	case "upcoming", "scheduled", "예정":
		return StatusUpcoming
	case "ended", "finished", "종영":
		return StatusEnded
	}
	return StatusUnknown
}

// Domain types

type Program struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProgramStatus `json:"status"`
	StatusLabel string        `json:"status_label"` // raw label as sent by the API
	ImageURL    string        `json:"image_url"`
	CreatedAt   string        `json:"created_at"`
}

type ParticipantImage struct {
	ID              int    `json:"id"`
	ParticipantName string `json:"participant_name"`
	ImageURL        string `json:"image_url"`
}

type Topic struct {
	ID                int                `json:"id"`
	ProgramID         int                `json:"program_id"`
	Episode           int                `json:"episode"`
	MatchType         string             `json:"match_type"`
	Title             string             `json:"topic_title"`
	Participants      []string           `json:"participants"`
	VideoURL          string             `json:"video_url"`
	VoteType          int                `json:"vote_type"`
	ActualResult      *int               `json:"actual_result"` // 1-based, nil until broadcast
	CreatedAt         string             `json:"created_at"`
	ParticipantImages []ParticipantImage `json:"participant_images"`
}

// VoteReceipt is what the API returns after a vote is recorded.
// ID is the only authorship token a viewer holds for commenting.
type VoteReceipt struct {
	ID         int    `json:"id"`
	TopicID    int    `json:"topic_id"`
	VoteChoice int    `json:"vote_choice"`
	VotedAt    string `json:"voted_at"`
}

type TallyEntry struct {
	Count      int     `json:"count"`
	Percent    float64 `json:"percent"`
	HasPercent bool    `json:"-"`
}

// ResultAggregate is the per-topic tally. Tally is sparse and keyed by 1-based choice.
type ResultAggregate struct {
	TopicID      int                `json:"topic_id"`
	TopicTitle   string             `json:"topic_title"`
	VoteType     int                `json:"vote_type"`
	ActualResult *int               `json:"actual_result"`
	Total        int                `json:"total"`
	HasTotal     bool               `json:"-"`
	Tally        map[int]TallyEntry `json:"results"`
	Participants []string           `json:"participants"`
	Match        bool               `json:"match"`
}

type Comment struct {
	ID        int    `json:"id"`
	VoteID    int    `json:"vote_id"`
	Content   string `json:"content"`
	Author    string `json:"comment_user_name"`
	CreatedAt string `json:"created_at"`
}

// Request types

type VoteRequest struct {
	VoteChoice int `json:"vote_choice"`
}

type CreateCommentRequest struct {
	UserName string `json:"comment_user_name"`
	Password string `json:"comment_password"`
	Content  string `json:"content"`
}

type DeleteCommentRequest struct {
	Password string `json:"comment_password"`
}
