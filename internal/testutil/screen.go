package testutil

import vietflux "github.com/ThanhNguyxn/vietflux-ime"

// Screen models the caller's text field. The engine never sees it; it only
// emits diffs, and Screen applies them the way a host editor would. Byte
// equality of the final Screen text is what the scenario expectations and
// golden traces assert on.
type Screen struct {
	text []rune
}

// Apply erases Backspace runes from the end, then appends Output.
func (s *Screen) Apply(r vietflux.Result) {
	s.text = s.text[:len(s.text)-r.Backspace]
	s.text = append(s.text, []rune(r.Output)...)
}

// String returns the accumulated text.
func (s *Screen) String() string { return string(s.text) }

// Reset clears the screen.
func (s *Screen) Reset() { s.text = s.text[:0] }
