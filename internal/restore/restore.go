// Package restore is the word-boundary post-processor. When a word commits
// it decides, in order: shortcut expansion of the raw token, restoration of
// the raw keystrokes for words the transforms mangled (neư → new), or the
// composed text as rendered.
package restore

import (
	"github.com/ThanhNguyxn/vietflux-ime/internal/phonology"
	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

// Kind reports what Finalize did to the word.
type Kind uint8

const (
	// Kept: the composed text stands as rendered.
	Kept Kind = iota
	// Restored: the raw keystrokes replaced a mangled composition.
	Restored
	// Expanded: a shortcut entry replaced the token.
	Expanded
)

var kindNames = [...]string{"kept", "restored", "expanded"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Finalize resolves the final text for a committing word. table may be nil.
//
// Restoration only fires when the composition both fails the phonology
// check and actually carries Vietnamese runes: transforms that never
// happened have nothing to undo, so pure-ASCII words commit as typed.
// The result is a fixed point; re-feeding it as literal keys and
// committing again returns it unchanged.
func Finalize(w *syllable.Syllable, table *shortcut.Table) (string, Kind) {
	if w.Empty() {
		return "", Kept
	}
	raw := string(w.RawRunes())
	if expansion, ok := table.Expand(raw); ok {
		return expansion, Expanded
	}
	rendered := w.Render()
	if !phonology.IsAdmissible(w) && viet.HasComposed(rendered) {
		return raw, Restored
	}
	return rendered, Kept
}
