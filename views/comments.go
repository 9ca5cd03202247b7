// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import "strings"

// The API cannot tell us why a mutation failed, so each direction has one message.
const (
	MsgPostFailed       = "Failed to post the comment."
	MsgDeleteFailed     = "Wrong password or insufficient permission."
	MsgPasswordRequired = "Enter the password."
	MsgFormIncomplete   = "Name, password and comment are all required."
)

type CommentForm struct {
	Author   string
	Password string
	Content  string
}

func (f CommentForm) Trimmed() CommentForm {
	return CommentForm{
		Author:   strings.TrimSpace(f.Author),
		Password: strings.TrimSpace(f.Password),
		Content:  strings.TrimSpace(f.Content),
	}
}

// CanSubmit requires every field and the id of the vote the viewer just cast
func (f CommentForm) CanSubmit(voteID int) bool {
	t := f.Trimmed()
	return voteID > 0 && t.Author != "" && t.Password != "" && t.Content != ""
}

type CreateState int

const (
	CreateIdle CreateState = iota
	CreateSubmitting
	CreateError
)

// Composer is the comment creation flow: idle → submitting → idle | error
type Composer struct {
	Form  CommentForm
	State CreateState
	Error string
}

// Submit moves to submitting when the form is complete. The bool reports
// whether the API should be called.
func (c Composer) Submit(voteID int) (Composer, bool) {
	if c.State == CreateSubmitting {
		return c, false
	}
	if !c.Form.CanSubmit(voteID) {
		return Composer{Form: c.Form, State: CreateIdle, Error: MsgFormIncomplete}, false
	}
	return Composer{Form: c.Form.Trimmed(), State: CreateSubmitting}, true
}

// Resolve applies the API outcome. Success clears the form.
func (c Composer) Resolve(err error) Composer {
	if c.State != CreateSubmitting {
		return c
	}
	if err != nil {
		return Composer{Form: c.Form, State: CreateError, Error: MsgPostFailed}
	}
	return Composer{State: CreateIdle}
}

type DeleteState int

const (
	DeleteIdle DeleteState = iota
	DeleteConfirming
	DeleteDeleting
	DeleteRemoved
)

// Deletion is one comment's delete flow:
// idle → confirming → deleting → removed | confirming (with error)
type Deletion struct {
	CommentID int
	State     DeleteState
	Error     string
}

func StartDelete(commentID int) Deletion {
	return Deletion{CommentID: commentID, State: DeleteConfirming}
}

// Submit takes the re-entered password. A blank password stays confirming.
// The bool reports whether the API should be called.
func (d Deletion) Submit(password string) (Deletion, bool) {
	if d.State != DeleteConfirming {
		return d, false
	}
	if strings.TrimSpace(password) == "" {
		return Deletion{CommentID: d.CommentID, State: DeleteConfirming, Error: MsgPasswordRequired}, false
	}
	return Deletion{CommentID: d.CommentID, State: DeleteDeleting}, true
}

func (d Deletion) Resolve(err error) Deletion {
	if d.State != DeleteDeleting {
		return d
	}
	if err != nil {
		return Deletion{CommentID: d.CommentID, State: DeleteConfirming, Error: MsgDeleteFailed}
	}
	return Deletion{CommentID: d.CommentID, State: DeleteRemoved}
}
