package vietflux

import (
	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
)

// Method selects the typing convention.
type Method = method.Method

// Typing conventions.
const (
	// Telex spells marks with letters: as -> á, aa -> â, uw -> ư, dd -> đ.
	Telex = method.Telex
	// VNI spells marks with digits: a1 -> á, a6 -> â, u7 -> ư, d9 -> đ.
	VNI = method.VNI
	// Auto infers the convention per word from the first trigger key.
	Auto = method.Auto
)

// ToneStyle selects where the tone sits on the oa, oe and uy nuclei.
type ToneStyle = syllable.Style

// Tone placement styles.
const (
	// StyleModern writes hoà, the contemporary school convention.
	StyleModern = syllable.StyleModern
	// StyleTraditional writes hòa.
	StyleTraditional = syllable.StyleTraditional
)

// Definition is a compiled custom keymap; see CompileKeymap.
type Definition = method.Definition

// ShortcutTable maps typed abbreviations to expansions.
type ShortcutTable = shortcut.Table

// DefaultShortcuts returns the stock abbreviation table (ko -> không,
// vn -> Việt Nam).
func DefaultShortcuts() *ShortcutTable { return shortcut.Defaults() }

// LoadShortcuts reads a shortcut table from a YAML file.
func LoadShortcuts(path string) (*ShortcutTable, error) { return shortcut.Load(path) }

// SpecialKey identifies the non-printing keys the engine reacts to.
type SpecialKey uint8

const (
	KeyNone SpecialKey = iota
	KeyBackspace
	KeyEscape
)

// KeyEvent is one keystroke. Printable keys set Rune; Backspace and Escape
// set Key; chord modifiers set Ctrl. When Key is set, Rune is ignored.
type KeyEvent struct {
	Rune rune
	Key  SpecialKey
	Ctrl bool
}

// String renders the event for logs and traces.
func (ev KeyEvent) String() string {
	switch {
	case ev.Ctrl:
		if ev.Rune != 0 {
			return "C-" + string(ev.Rune)
		}
		return "C-"
	case ev.Key == KeyBackspace:
		return "<bs>"
	case ev.Key == KeyEscape:
		return "<esc>"
	case ev.Rune != 0:
		return string(ev.Rune)
	}
	return "<none>"
}

// Action classifies what a keystroke did to the composition.
type Action uint8

const (
	// ActionNone: the key did not touch the composition. Output may still
	// carry a literal to insert (disabled passthrough).
	ActionNone Action = iota
	// ActionUpdate: the composing word changed in place.
	ActionUpdate
	// ActionCommit: a word finalized; composition is over until the next
	// printable key.
	ActionCommit
)

var actionNames = [...]string{"none", "update", "commit"}

// String implements fmt.Stringer.
func (a Action) String() string {
	if int(a) >= len(actionNames) {
		return "invalid"
	}
	return actionNames[a]
}

// Result tells the caller how to edit its text: erase Backspace characters
// already emitted, then insert Output. The pair is the minimal diff against
// the engine's previous emission for this word.
type Result struct {
	Action    Action
	Output    string
	Backspace int
}

// Committed reports whether this keystroke finalized a word.
func (r Result) Committed() bool { return r.Action == ActionCommit }
