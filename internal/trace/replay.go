package trace

import (
	"context"
	"fmt"
	"strconv"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
)

// Divergence pinpoints the first replay mismatch: the keystroke's seq, the
// field that differed, the recorded value and the replayed one.
type Divergence struct {
	Seq   int64
	Field string
	Want  string
	Got   string
}

// String renders the divergence for reports.
func (d *Divergence) String() string {
	return fmt.Sprintf("seq %d: %s: recorded %q, replayed %q", d.Seq, d.Field, d.Want, d.Got)
}

// Replay re-runs a recorded session through a fresh engine and returns the
// first divergence, or nil when the replay reproduces the recording. The
// engine is built from the recorded method, style, and options; extras are
// applied after those, for restoring state the header does not carry
// (shortcut tables, custom keymaps).
//
// The comparison covers the edit stream (action, backspace, output) and the
// buffer after each key, not the logical clock, so recordings that began
// mid-session replay cleanly.
func Replay(ctx context.Context, s *Store, sessionID string, extras ...vietflux.Option) (*Divergence, error) {
	sess, err := s.ReadSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("replay session %s: %w", sessionID, err)
	}
	events, err := s.ReadEvents(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("replay session %s: %w", sessionID, err)
	}

	m, err := method.Parse(sess.Method)
	if err != nil {
		return nil, fmt.Errorf("replay session %s: %w", sessionID, err)
	}
	style, ok := syllable.ParseStyle(sess.Style)
	if !ok {
		return nil, fmt.Errorf("replay session %s: unknown tone style %q", sessionID, sess.Style)
	}

	opts := []vietflux.Option{
		vietflux.WithMethod(m),
		vietflux.WithToneStyle(style),
		vietflux.WithOptions(sess.Options),
	}
	opts = append(opts, extras...)
	e := vietflux.New(opts...)

	for i := range events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := e.ProcessKey(events[i].Key)
		if d := diverge(&events[i], res, e.Buffer()); d != nil {
			return d, nil
		}
	}

	return nil, nil
}

// diverge compares one replayed key against its recording. Fields are
// checked in the order a debugger wants them: what happened, how much was
// erased, what was written, what is still composing.
func diverge(ev *Event, res vietflux.Result, buffer string) *Divergence {
	if res.Action != ev.Action {
		return &Divergence{Seq: ev.Seq, Field: "action", Want: ev.Action.String(), Got: res.Action.String()}
	}
	if res.Backspace != ev.Backspace {
		return &Divergence{Seq: ev.Seq, Field: "backspace", Want: strconv.Itoa(ev.Backspace), Got: strconv.Itoa(res.Backspace)}
	}
	if res.Output != ev.Output {
		return &Divergence{Seq: ev.Seq, Field: "output", Want: ev.Output, Got: res.Output}
	}
	if buffer != ev.Buffer {
		return &Divergence{Seq: ev.Seq, Field: "buffer", Want: ev.Buffer, Got: buffer}
	}
	return nil
}
