package vietflux

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/google/uuid"

	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/phonology"
	"github.com/ThanhNguyxn/vietflux-ime/internal/restore"
	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

// Engine composes one word at a time from a stream of key events.
//
// All state is owned by the caller through this value: there is no
// process-wide registry, and two engines never share anything mutable.
// Calls must stay on a single goroutine; each ProcessKey completes fully
// (transform, validation, rendering) before the next may run, and keys are
// processed strictly in arrival order.
type Engine struct {
	session string
	clock   clock
	log     *slog.Logger

	method    Method
	style     ToneStyle
	quick     bool
	options   Options
	custom    method.Table // set from a Definition, overrides method
	pending   *Definition
	shortcuts *shortcut.Table

	enabled bool
	word    *syllable.Syllable
	shown   []rune
	probe   []rune
	ring    intentRing
}

// New creates an engine with a fresh UUIDv7 session id. Defaults: Telex,
// modern tone style, no shortcuts, enabled.
func New(opts ...Option) *Engine {
	e := &Engine{
		session: uuid.Must(uuid.NewV7()).String(),
		log:     slog.Default(),
		method:  Telex,
		style:   StyleModern,
		enabled: true,
		word:    syllable.New(),
		shown:   make([]rune, 0, syllable.MaxLetters),
		probe:   make([]rune, 0, syllable.MaxRaw+1),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pending != nil {
		def := *e.pending
		e.pending = nil
		if err := def.Validate(); err != nil {
			e.log.Error("invalid keymap definition, keeping base method",
				"session", e.session, "definition", def.Name, "error", err)
		} else {
			e.custom = def.Table()
		}
	}
	e.log.Debug("engine created",
		"session", e.session, "method", e.method.String(), "style", e.style.String())
	return e
}

// Configure switches the typing convention and records new options. The
// composing word, if any, is abandoned in place: the engine forgets it and
// the emitted text stays as displayed.
func (e *Engine) Configure(m Method, opts Options) error {
	switch m {
	case Telex, VNI, Auto:
	default:
		return fmt.Errorf("unknown input method %d", uint8(m))
	}
	e.resetWord()
	e.method = m
	e.options = opts
	e.log.Debug("engine configured", "session", e.session, "method", m.String())
	return nil
}

// SessionID returns the engine's UUIDv7 session identifier.
func (e *Engine) SessionID() string { return e.session }

// Seq returns the sequence number of the last processed keystroke.
func (e *Engine) Seq() int64 { return e.clock.current() }

// Method returns the configured typing convention.
func (e *Engine) Method() Method { return e.method }

// Style returns the configured tone placement style.
func (e *Engine) Style() ToneStyle { return e.style }

// Options returns the recorded caller-owned toggles.
func (e *Engine) Options() Options { return e.options }

// Enabled reports whether the engine is composing or bypassed.
func (e *Engine) Enabled() bool { return e.enabled }

// ToggleEnabled flips the global bypass and returns the new state.
// Disabling abandons the composing word; the text stays as displayed.
func (e *Engine) ToggleEnabled() bool {
	e.enabled = !e.enabled
	if !e.enabled {
		e.resetWord()
	}
	e.log.Debug("engine toggled", "session", e.session, "enabled", e.enabled)
	return e.enabled
}

// Buffer returns the rendered text of the composing word.
func (e *Engine) Buffer() string { return e.word.Render() }

// Raw returns the keystrokes of the composing word, verbatim.
func (e *Engine) Raw() string { return e.word.Raw() }

// RecentIntents returns the retained intent records, oldest first.
func (e *Engine) RecentIntents() []IntentRecord { return e.ring.items() }

// Reset clears the composition, the emitted-text memory, and the intent
// history. The session id and sequence counter survive.
func (e *Engine) Reset() {
	e.resetWord()
	e.ring.reset()
}

// ProcessKey consumes one key event and returns the edit the caller must
// apply to its text. Every call returns; there are no error states, only
// literal degradation.
func (e *Engine) ProcessKey(ev KeyEvent) Result {
	seq := e.clock.next()
	res := e.process(ev)
	e.log.Debug("key processed",
		"session", e.session, "seq", seq, "key", ev.String(),
		"action", res.Action.String(), "backspace", res.Backspace,
		"output", res.Output, "buffer", e.word.Render())
	return res
}

// Flush commits the composing word without a boundary character, for focus
// loss and host-driven commits. No-op on an empty buffer.
func (e *Engine) Flush() Result {
	if e.word.Empty() {
		return Result{}
	}
	bs, out := e.finishWord("")
	return Result{Action: ActionCommit, Output: out, Backspace: bs}
}

func (e *Engine) process(ev KeyEvent) Result {
	if !e.enabled {
		if ev.Rune != 0 && !ev.Ctrl && ev.Key == KeyNone {
			return Result{Action: ActionNone, Output: string(ev.Rune)}
		}
		return Result{}
	}
	if ev.Ctrl {
		// The chord belongs to the host. Whatever was composing is left
		// on screen as-is and forgotten.
		e.resetWord()
		return Result{}
	}
	switch ev.Key {
	case KeyBackspace:
		return e.deleteLast()
	case KeyEscape:
		return e.escape()
	}
	r := ev.Rune
	if r == 0 {
		return Result{}
	}
	if phonology.IsWordBreak(r) {
		return e.commit(r)
	}
	if !unicode.IsPrint(r) {
		return Result{}
	}
	return e.printable(r)
}

// printable runs one composing key. When the word is at capacity it first
// finalizes in place, then starts the next word with this key; both edits
// land in the one Result.
func (e *Engine) printable(key rune) Result {
	if e.word.Full() {
		bs, out := e.finishWord("")
		next := e.printable(key)
		return Result{Action: ActionCommit, Output: out + next.Output, Backspace: bs + next.Backspace}
	}
	e.applyKey(key, true)
	return e.emitUpdate()
}

// commit ends the word on a boundary rune. The boundary itself is emitted
// verbatim after the finalized text, so output concatenation stays faithful
// to the typed stream.
func (e *Engine) commit(boundary rune) Result {
	bs, out := e.finishWord(string(boundary))
	return Result{Action: ActionCommit, Output: out, Backspace: bs}
}

// escape abandons composition and puts the raw keystrokes back, skipping
// shortcut expansion and restoration.
func (e *Engine) escape() Result {
	if e.word.Empty() {
		return Result{}
	}
	raw := append([]rune(nil), e.word.RawRunes()...)
	bs, out := diffText(e.shown, raw)
	e.resetWord()
	return Result{Action: ActionCommit, Output: out, Backspace: bs}
}

// finishWord post-processes the composing word (shortcuts, restoration),
// appends the boundary text, and returns the edit against the shown text.
func (e *Engine) finishWord(boundary string) (bs int, out string) {
	text, kind := restore.Finalize(e.word, e.shortcuts)
	if kind != restore.Kept {
		e.log.Debug("word finalized",
			"session", e.session, "kind", kind.String(), "raw", e.word.Raw(), "text", text)
	}
	final := append([]rune(text), []rune(boundary)...)
	bs, out = diffText(e.shown, final)
	e.resetWord()
	return bs, out
}

// applyKey resolves one printable key through the active method table and
// applies the winning intent under admissibility gating. Shared by live
// processing (record=true) and backspace replay.
func (e *Engine) applyKey(key rune, record bool) {
	intents := e.tableFor(key).Resolve(unicode.ToLower(key), e.word)
	intent, outcome := e.applyIntents(intents, key)
	e.word.PushRaw(key)
	if record {
		e.ring.push(IntentRecord{
			Seq:     e.clock.current(),
			Key:     string(key),
			Intent:  intent,
			Outcome: outcome,
		})
	}
	if exp, ok := e.shortcuts.ExpandImmediate(e.word.Raw()); ok {
		e.expandTo(exp)
	}
}

// applyIntents tries the intent chain in order; the first one with a target
// wins. Transforms run on a copy and are kept only when the result is still
// a possible Vietnamese syllable; a vetoed transform falls through to the
// next transform in the chain, and the key lands as a literal when none
// survives. Undo outcomes skip the gate: they return to a state that was
// already accepted. So does the đ stroke: it lands wherever a plain d sits
// and the commit-time restoration pass cleans up words that were never
// Vietnamese.
func (e *Engine) applyIntents(intents []method.Intent, key rune) (string, string) {
	degraded := ""
	for _, in := range intents {
		switch in.Kind {
		case method.IntentLiteral:
			// A substitution fallback (the standalone ư of telex w). Once a
			// transform has found a target and been vetoed, the key stays
			// itself instead.
			if degraded != "" {
				break
			}
			e.appendLiteral(in.Rune, key)
			return in.String(), "applied"

		case method.IntentModify:
			trial := e.word.Clone()
			switch trial.ApplyModifier(in.Mod, in.Target, key) {
			case syllable.Undone:
				e.word = trial
				return in.String(), "undone"
			case syllable.Applied:
				if in.Mod == viet.ModStroke || phonology.IsAdmissible(trial) {
					e.word = trial
					return in.String(), "applied"
				}
				if degraded == "" {
					degraded = in.String()
				}
			}

		case method.IntentTone:
			trial := e.word.Clone()
			switch trial.ApplyTone(in.Tone, e.style) {
			case syllable.Undone:
				e.word = trial
				e.appendLiteral(key, key)
				return in.String(), "undone"
			case syllable.Applied:
				if phonology.IsAdmissible(trial) {
					e.word = trial
					return in.String(), "applied"
				}
				e.appendLiteral(key, key)
				return in.String(), "degraded"
			}

		case method.IntentClearTone:
			trial := e.word.Clone()
			if trial.ClearTone() == syllable.Applied {
				e.word = trial
				return in.String(), "applied"
			}
		}
	}
	e.appendLiteral(key, key)
	if degraded != "" {
		return degraded, "degraded"
	}
	return method.Literal(key).String(), "applied"
}

// appendLiteral appends r as a plain letter whose raw keystroke is key.
// The two differ when a trigger substitutes a letter (standalone w -> ư);
// keeping the typed key in Raw lets undo and replay reproduce it.
func (e *Engine) appendLiteral(r, key rune) {
	l := viet.NewLetter(r)
	l.Raw = string(key)
	if unicode.IsUpper(key) {
		l.Upper = true
	}
	e.word.Append(l)
}

// tableFor picks the method table for this key. Auto re-chooses per key
// from the raw token including the key itself, so the decision is a pure
// function of the keystrokes and replay agrees with live typing.
func (e *Engine) tableFor(key rune) method.Table {
	if e.custom != nil {
		return e.custom
	}
	m := e.method
	if m == Auto {
		e.probe = append(append(e.probe[:0], e.word.RawRunes()...), key)
		m = method.Choose(e.probe)
	}
	if m == VNI {
		return method.TableFor(VNI)
	}
	return method.TelexTable{Quick: e.quick}
}

// expandTo replaces the composing letters with text, keeping the raw
// keystroke log intact so backspace replay still sees every typed key.
func (e *Engine) expandTo(text string) {
	raw := append([]rune(nil), e.word.RawRunes()...)
	next := syllable.New()
	for _, r := range text {
		next.Append(viet.NewLetter(r))
	}
	for _, k := range raw {
		next.PushRaw(k)
	}
	e.word = next
}

// emitUpdate diffs the rendered word against what was last emitted and
// remembers the new text.
func (e *Engine) emitUpdate() Result {
	rendered := []rune(e.word.Render())
	bs, out := diffText(e.shown, rendered)
	e.shown = append(e.shown[:0], rendered...)
	return Result{Action: ActionUpdate, Output: out, Backspace: bs}
}

func (e *Engine) resetWord() {
	e.word.Clear()
	e.shown = e.shown[:0]
}

// diffText returns the minimal suffix edit turning old into new: how many
// trailing runes of old to erase and the text to insert in their place.
func diffText(old, new []rune) (int, string) {
	p := 0
	for p < len(old) && p < len(new) && old[p] == new[p] {
		p++
	}
	return len(old) - p, string(new[p:])
}
