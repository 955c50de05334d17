package vietflux

import (
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
)

// deleteLast undoes the most recent keystroke. The raw log is append-only:
// instead of inverting the last transform in place, the engine rebuilds the
// word by replaying every key but the last through the same apply path.
// The result is the state as if that key had never been typed, not merely
// the last rendered glyph removed (erasing the glyph of ệ would lose the
// circumflex and the tone at once).
func (e *Engine) deleteLast() Result {
	raw := e.word.RawRunes()
	if len(raw) == 0 {
		// Nothing composing; the host owns whatever is left of its text.
		return Result{}
	}
	prefix := append([]rune(nil), raw[:len(raw)-1]...)
	e.word = syllable.New()
	for _, k := range prefix {
		e.applyKey(k, false)
	}
	e.ring.push(IntentRecord{
		Seq:     e.clock.current(),
		Key:     "<bs>",
		Intent:  "delete-last",
		Outcome: "replayed",
	})
	return e.emitUpdate()
}
