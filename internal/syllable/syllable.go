// Package syllable holds the composing word: a bounded letter sequence plus
// the verbatim keystrokes behind it, with the structural transforms that
// attach modifiers and tone marks.
//
// Transforms here are purely structural. Whether a transformed syllable is
// phonologically admissible is decided one layer up: the engine applies a
// transform to a copy, consults the validator, and keeps or discards the
// result. That keeps this package free of policy and free of import cycles.
package syllable

import (
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

const (
	// MaxLetters bounds the rendered letters of one composing word.
	MaxLetters = 32
	// MaxRaw bounds the recorded keystrokes of one composing word. Trigger
	// keys consume raw slots without adding letters, hence the headroom.
	MaxRaw = 64
)

// Syllable is one composing word. The zero value is not ready; use New so
// the backing arrays are allocated once per session.
type Syllable struct {
	letters []viet.Letter
	raw     []rune
}

// New returns an empty syllable with capacity preallocated.
func New() *Syllable {
	return &Syllable{
		letters: make([]viet.Letter, 0, MaxLetters),
		raw:     make([]rune, 0, MaxRaw),
	}
}

// Clone copies the syllable so a transform can be tried and discarded.
func (s *Syllable) Clone() *Syllable {
	c := New()
	c.letters = c.letters[:len(s.letters)]
	copy(c.letters, s.letters)
	c.raw = c.raw[:len(s.raw)]
	copy(c.raw, s.raw)
	return c
}

// Len returns the number of letters.
func (s *Syllable) Len() int { return len(s.letters) }

// Empty reports whether nothing is composing.
func (s *Syllable) Empty() bool { return len(s.letters) == 0 && len(s.raw) == 0 }

// Full reports whether another keystroke could overflow the buffer. Undo
// expansion can grow the letter count by one beyond the keystroke itself,
// hence the slack.
func (s *Syllable) Full() bool {
	return len(s.letters) >= MaxLetters-2 || len(s.raw) >= MaxRaw-1
}

// Letters exposes the letter sequence. Callers must not hold the slice
// across mutations.
func (s *Syllable) Letters() []viet.Letter { return s.letters }

// Raw returns the verbatim keystrokes typed for this word.
func (s *Syllable) Raw() string { return string(s.raw) }

// RawRunes exposes the keystroke log for replay. Callers must copy before
// mutating the syllable.
func (s *Syllable) RawRunes() []rune { return s.raw }

// PushRaw records one consumed keystroke.
func (s *Syllable) PushRaw(key rune) { s.raw = append(s.raw, key) }

// Append adds a letter.
func (s *Syllable) Append(l viet.Letter) { s.letters = append(s.letters, l) }

// Render returns the display text for the current letters.
func (s *Syllable) Render() string { return viet.Render(s.letters) }

// Clear resets the syllable for the next word, keeping capacity.
func (s *Syllable) Clear() {
	s.letters = s.letters[:0]
	s.raw = s.raw[:0]
}

// LastLetter reports the base and modifier of the most recent letter. It
// satisfies the context interface the method tables resolve against.
func (s *Syllable) LastLetter() (rune, viet.Mod, bool) {
	if len(s.letters) == 0 {
		return 0, viet.ModNone, false
	}
	last := s.letters[len(s.letters)-1]
	return last.Base, last.Mod, true
}

// Shape is the structural split of the letter sequence. Initial consonants
// occupy [0:InitialEnd), the vowel nucleus [InitialEnd:NucleusEnd), the
// final cluster [NucleusEnd:FinalEnd). Anything past FinalEnd sits outside
// syllable structure (a vowel resumed after the final) and marks the word
// as structurally broken.
type Shape struct {
	InitialEnd int
	NucleusEnd int
	FinalEnd   int
}

// Shape segments the current letters. The u of a qu- initial and the plain
// i of a gi- initial belong to the initial cluster when another vowel
// follows, so "quý" and "già" place their marks on the true nucleus.
func (s *Syllable) Shape() Shape {
	letters := s.letters
	i := 0
	for i < len(letters) && !letters[i].IsVowel() {
		i++
	}
	if i > 0 && i+1 < len(letters) && letters[i+1].IsVowel() {
		prev := letters[i-1].Base
		cur := letters[i]
		if prev == 'q' && cur.Base == 'u' && cur.Mod == viet.ModNone {
			i++
		} else if prev == 'g' && cur.Base == 'i' && cur.Mod == viet.ModNone && cur.Tone == viet.ToneNone {
			i++
		}
	}
	sh := Shape{InitialEnd: i}
	for i < len(letters) && letters[i].IsVowel() {
		i++
	}
	sh.NucleusEnd = i
	for i < len(letters) && !letters[i].IsVowel() {
		i++
	}
	sh.FinalEnd = i
	return sh
}

// Nucleus returns the nucleus letters of the current shape.
func (s *Syllable) Nucleus() []viet.Letter {
	sh := s.Shape()
	return s.letters[sh.InitialEnd:sh.NucleusEnd]
}
