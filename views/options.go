// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"strconv"

	"github.com/danielhkuo/your-pick/models"
)

// placeholderName stands in for a binary topic's missing target participant
const placeholderName = "Participant"

type Participant struct {
	Name  string
	Image string
}

// VoteKind is either Binary or Choice. The unexported method closes the set.
type VoteKind interface {
	voteKind()
}

// Binary is a pass/fail vote on a single participant
type Binary struct {
	Participant Participant
}

// Choice picks one of N participants
type Choice struct {
	Participants []Participant
}

func (Binary) voteKind() {}
func (Choice) voteKind() {}

// Option is one selectable entry in the voting UI.
// Value is what gets sent as vote_choice and what result tallies are keyed by.
type Option struct {
	Key   string
	Label string
	Sub   string
	Image string
	Value int
}

// KindOf classifies a topic by its vote type
func KindOf(voteType int, participants []string, images []models.ParticipantImage) VoteKind {
	if voteType == models.VoteTypeBinary {
		name := placeholderName
		if len(participants) > 0 {
			name = participants[0]
		}
		return Binary{Participant: Participant{Name: name, Image: imageFor(images, name)}}
	}

	ps := make([]Participant, 0, len(participants))
	for _, name := range participants {
		ps = append(ps, Participant{Name: name, Image: imageFor(images, name)})
	}
	return Choice{Participants: ps}
}

// TopicKind is KindOf applied to a topic
func TopicKind(t models.Topic) VoteKind {
	return KindOf(t.VoteType, t.Participants, t.ParticipantImages)
}

func imageFor(images []models.ParticipantImage, name string) string {
	for _, img := range images {
		if img.ParticipantName == name {
			return img.ImageURL
		}
	}
	return ""
}

// Options derives the ordered options for a vote kind. BuildResult uses the
// same list to label tallies, so both directions share one mapping.
func Options(kind VoteKind) []Option {
	switch k := kind.(type) {
	case Binary:
		return []Option{
			{Key: "PASS", Label: "Pass", Sub: k.Participant.Name, Image: k.Participant.Image, Value: models.ChoicePass},
			{Key: "FAIL", Label: "Fail", Sub: k.Participant.Name, Image: k.Participant.Image, Value: models.ChoiceFail},
		}
	case Choice:
		opts := make([]Option, 0, len(k.Participants))
		for i, p := range k.Participants {
			opts = append(opts, Option{
				Key:   "P" + strconv.Itoa(i+1),
				Label: p.Name,
				Image: p.Image,
				Value: i + 1,
			})
		}
		return opts
	case nil:
		return nil
	default:
		panic("views: unknown vote kind")
	}
}

// ValidChoice reports whether value is the submission value of one of kind's options
func ValidChoice(kind VoteKind, value int) bool {
	for _, opt := range Options(kind) {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// GridClass picks the option grid layout for n options
func GridClass(n int) string {
	switch {
	case n <= 1:
		return "grid--1"
	case n == 2:
		return "grid--2"
	default:
		return "grid--3"
	}
}
