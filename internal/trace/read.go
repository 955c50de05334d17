package trace

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
)

// ReadSession retrieves a session header by id.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadSession(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, method, style, auto_capitalize, smart_quotes, spell_check
		FROM sessions
		WHERE id = ?
	`, id)

	return scanSession(row.Scan)
}

// ReadEvents returns a session's keystrokes ordered by seq ASC.
// Returns an empty slice (not nil) when the session has no events.
func (s *Store) ReadEvents(ctx context.Context, sessionID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, seq, key_rune, key_special, ctrl, action, output, backspace, buffer
		FROM events
		WHERE session_id = ?
		ORDER BY seq ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if events == nil {
		events = []Event{}
	}

	return events, nil
}

// ListSessions returns all session headers, newest first. The id tiebreak
// keeps the order deterministic for sessions created in the same instant.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, method, style, auto_capitalize, smart_quotes, spell_check
		FROM sessions
		ORDER BY created_at DESC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	if sessions == nil {
		sessions = []Session{}
	}

	return sessions, nil
}

// CountEvents returns the number of keystrokes recorded for a session.
func (s *Store) CountEvents(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM events WHERE session_id = ?
	`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// scanSession reads one sessions row through any Scan-shaped source.
func scanSession(scan func(dest ...any) error) (Session, error) {
	var sess Session
	var created string

	if err := scan(
		&sess.ID, &created, &sess.Method, &sess.Style,
		&sess.Options.AutoCapitalize, &sess.Options.SmartQuotes, &sess.Options.SpellCheck,
	); err != nil {
		return Session{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Session{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	sess.CreatedAt = t

	return sess, nil
}

// scanEvent reads one events row.
func scanEvent(rows *sql.Rows) (Event, error) {
	var ev Event
	var keyRune string
	var special int
	var action string

	if err := rows.Scan(
		&ev.SessionID, &ev.Seq, &keyRune, &special, &ev.Key.Ctrl,
		&action, &ev.Output, &ev.Backspace, &ev.Buffer,
	); err != nil {
		return Event{}, fmt.Errorf("scan event: %w", err)
	}

	for _, r := range keyRune {
		ev.Key.Rune = r
		break
	}
	ev.Key.Key = vietflux.SpecialKey(special)

	a, err := parseAction(action)
	if err != nil {
		return Event{}, err
	}
	ev.Action = a

	return ev, nil
}

// parseAction parses an action name as stored by WriteEvent.
func parseAction(s string) (vietflux.Action, error) {
	switch s {
	case "none":
		return vietflux.ActionNone, nil
	case "update":
		return vietflux.ActionUpdate, nil
	case "commit":
		return vietflux.ActionCommit, nil
	}
	return vietflux.ActionNone, fmt.Errorf("unknown action %q", s)
}
