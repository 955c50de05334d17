package trace

import (
	"context"
	"fmt"
	"time"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
)

// Session is one recorded typing session's header: the engine configuration
// a replay needs to reproduce the event stream.
type Session struct {
	ID        string
	CreatedAt time.Time
	Method    string
	Style     string
	Options   vietflux.Options
}

// Event is one recorded keystroke with the edit it produced and the
// composing buffer it left behind.
type Event struct {
	SessionID string
	Seq       int64
	Key       vietflux.KeyEvent
	Action    vietflux.Action
	Output    string
	Backspace int
	Buffer    string
}

// BeginSession inserts a session header row. Duplicate ids are silently
// ignored (ON CONFLICT DO NOTHING), so re-opening a recorder over the same
// engine is idempotent.
func (s *Store) BeginSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions
		(id, created_at, method, style, auto_capitalize, smart_quotes, spell_check)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		sess.ID,
		sess.CreatedAt.UTC().Format(time.RFC3339Nano),
		sess.Method,
		sess.Style,
		sess.Options.AutoCapitalize,
		sess.Options.SmartQuotes,
		sess.Options.SpellCheck,
	)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}

	return nil
}

// WriteEvent appends one keystroke row. The (session_id, seq) key makes
// writes idempotent: a duplicate seq is silently ignored, which keeps the
// log append-only even if a recorder retries.
//
// The session referenced by SessionID must exist (foreign key constraint).
func (s *Store) WriteEvent(ctx context.Context, ev Event) error {
	keyRune := ""
	if ev.Key.Rune != 0 {
		keyRune = string(ev.Key.Rune)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events
		(session_id, seq, key_rune, key_special, ctrl, action, output, backspace, buffer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		ev.SessionID,
		ev.Seq,
		keyRune,
		int(ev.Key.Key),
		ev.Key.Ctrl,
		ev.Action.String(),
		ev.Output,
		ev.Backspace,
		ev.Buffer,
	)
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	return nil
}

// Recorder ties an engine to the store: every key processed through it is
// appended to the session's event log.
type Recorder struct {
	store  *Store
	engine *vietflux.Engine
}

// NewRecorder writes the session header for the engine and returns a
// recorder wrapping it. The engine keeps working as usual; the recorder
// only observes.
func NewRecorder(ctx context.Context, s *Store, e *vietflux.Engine) (*Recorder, error) {
	sess := Session{
		ID:        e.SessionID(),
		CreatedAt: time.Now().UTC(),
		Method:    e.Method().String(),
		Style:     e.Style().String(),
		Options:   e.Options(),
	}
	if err := s.BeginSession(ctx, sess); err != nil {
		return nil, err
	}
	return &Recorder{store: s, engine: e}, nil
}

// ProcessKey forwards the key to the engine and appends the resulting
// event row. The engine's result is returned even when the write fails, so
// the caller's screen never falls out of step with the engine.
func (r *Recorder) ProcessKey(ctx context.Context, ev vietflux.KeyEvent) (vietflux.Result, error) {
	res := r.engine.ProcessKey(ev)
	evt := Event{
		SessionID: r.engine.SessionID(),
		Seq:       r.engine.Seq(),
		Key:       ev,
		Action:    res.Action,
		Output:    res.Output,
		Backspace: res.Backspace,
		Buffer:    r.engine.Buffer(),
	}
	if err := r.store.WriteEvent(ctx, evt); err != nil {
		return res, fmt.Errorf("record key %s: %w", ev, err)
	}
	return res, nil
}

// Engine returns the wrapped engine.
func (r *Recorder) Engine() *vietflux.Engine { return r.engine }
