// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/danielhkuo/your-pick/nav"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrStale means a newer request from the same viewer began after the ticket was issued
	ErrStale = errors.New("stale response")
)

// Session is one browser's navigation state
type Session struct {
	ID         string
	Generation int64
	Current    nav.Route
	// Pending is the route of the most recent Begin
	Pending nav.Route
	History nav.History
}

// Meta is recorded when a session is created
type Meta struct {
	IPHash    string
	UserAgent string
}

// Ticket identifies one page load. It is valid until the viewer begins another.
type Ticket struct {
	SessionID  string
	Generation int64
	Route      nav.Route
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Create inserts a fresh session positioned on the landing page
func (s *Store) Create(ctx context.Context, meta Meta) (Session, error) {
	sess := Session{
		ID:      uuid.NewString(),
		Current: nav.Landing(),
		Pending: nav.Landing(),
		History: nav.History{},
	}

	current, history, err := encode(sess.Current, sess.History)
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO viewer_session (id, generation, current_route, pending_route, history, ip_hash, user_agent, created_at, last_seen_at)
		VALUES ($1, 0, $2, $3, $4, $5, $6, $7, $8)
	`, sess.ID, current, current, history, nullable(meta.IPHash), nullable(meta.UserAgent), now, now)
	if err != nil {
		return Session{}, fmt.Errorf("failed to insert session: %w", err)
	}

	return sess, nil
}

// Get loads a session by id
func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Session{}, ErrSessionNotFound
	}

	var sess Session
	var current, pending, history string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, generation, current_route, pending_route, history
		FROM viewer_session
		WHERE id = $1
	`, id).Scan(&sess.ID, &sess.Generation, &current, &pending, &history)

	if err == sql.ErrNoRows {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to query session: %w", err)
	}

	if err := json.Unmarshal([]byte(current), &sess.Current); err != nil {
		return Session{}, fmt.Errorf("failed to decode current route: %w", err)
	}
	if err := json.Unmarshal([]byte(pending), &sess.Pending); err != nil {
		return Session{}, fmt.Errorf("failed to decode pending route: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &sess.History); err != nil {
		return Session{}, fmt.Errorf("failed to decode history: %w", err)
	}

	return sess, nil
}

// Ensure returns the session for id, creating one when id is empty or unknown.
// created reports whether a new id was issued.
func (s *Store) Ensure(ctx context.Context, id string, meta Meta) (sess Session, created bool, err error) {
	if id != "" {
		sess, err = s.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return Session{}, false, err
		}
	}

	sess, err = s.Create(ctx, meta)
	if err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

// Begin starts a page load for route, invalidating every earlier ticket of the session.
func (s *Store) Begin(ctx context.Context, id string, route nav.Route) (Ticket, error) {
	pending, err := json.Marshal(route)
	if err != nil {
		return Ticket{}, fmt.Errorf("failed to encode route: %w", err)
	}

	var generation int64
	err = s.db.QueryRowContext(ctx, `
		UPDATE viewer_session
		SET generation = generation + 1, pending_route = $1, last_seen_at = $2
		WHERE id = $3
		RETURNING generation
	`, string(pending), s.now(), id).Scan(&generation)

	if err == sql.ErrNoRows {
		return Ticket{}, ErrSessionNotFound
	}
	if err != nil {
		return Ticket{}, fmt.Errorf("failed to begin request: %w", err)
	}

	return Ticket{SessionID: id, Generation: generation, Route: route}, nil
}

// Commit records the ticket's route as current and pushes it on the history.
// Returns ErrStale if another Begin happened since the ticket was issued.
func (s *Store) Commit(ctx context.Context, t Ticket) error {
	sess, err := s.Get(ctx, t.SessionID)
	if err != nil {
		return err
	}
	if sess.Generation != t.Generation {
		return ErrStale
	}

	current, history, err := encode(t.Route, sess.History.Push(t.Route))
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE viewer_session
		SET current_route = $1, history = $2, last_seen_at = $3
		WHERE id = $4 AND generation = $5
	`, current, history, s.now(), t.SessionID, t.Generation)
	if err != nil {
		return fmt.Errorf("failed to commit request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to commit request: %w", err)
	}
	if n == 0 {
		return ErrStale
	}
	return nil
}

// Back returns where the back link on current should lead for this viewer
func (s *Store) Back(ctx context.Context, id string, current nav.Route) (nav.Route, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nav.Parent(current), err
	}

	return sess.History.Back(current), nil
}

// Prune deletes sessions not seen since cutoff and reports how many were removed
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM viewer_session WHERE last_seen_at < $1
	`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return res.RowsAffected()
}

func encode(current nav.Route, history nav.History) (string, string, error) {
	c, err := json.Marshal(current)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode current route: %w", err)
	}
	if history == nil {
		history = nav.History{}
	}
	h, err := json.Marshal(history)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode history: %w", err)
	}
	return string(c), string(h), nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
