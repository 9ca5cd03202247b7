// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and request types shared by the API client,
the normalizer and the page handlers.

# Domain Types

Records as consumed from the external voting API:

  - Program: a tracked show, with a normalized ProgramStatus
  - Topic: one votable matchup within an episode
  - ParticipantImage: participant name to image mapping
  - VoteReceipt: server-issued vote id and timestamp
  - ResultAggregate: sparse per-choice tally plus broadcast result
  - Comment: a comment attached to a vote

# Request Types

JSON bodies sent to the API:

  - VoteRequest: vote_choice
  - CreateCommentRequest: comment_user_name, comment_password, content
  - DeleteCommentRequest: comment_password

# Constants

Vote types:

	VoteTypeBinary = 1 // pass/fail on one participant
	VoteTypeDuel   = 2 // two participants; 3+ is an N-way choice

Binary choices:

	ChoicePass = 1
	ChoiceFail = 2

Program status:

	StatusOngoing, StatusUpcoming, StatusEnded, StatusUnknown
*/
package models
