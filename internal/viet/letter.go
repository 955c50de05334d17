package viet

import (
	"strings"
	"unicode"
)

// Letter is one rendered position in a composing word: a lowercase base
// rune, the modifier and tone attached to it, and the case it was typed
// with. Raw holds the keystrokes behind the letter exactly as typed (the
// base key plus any trigger keys that landed on it); undoing a modifier
// expands the letter back into those keys as plain literals.
type Letter struct {
	Base  rune
	Mod   Mod
	Tone  Tone
	Upper bool
	Raw   string
}

// NewLetter builds a Letter from a single typed or literal rune. Composed
// Vietnamese runes are split into base, modifier, and tone, so a literal
// 'ư' behaves like a horned u from then on.
func NewLetter(key rune) Letter {
	l := Letter{
		Base:  unicode.ToLower(key),
		Upper: unicode.IsUpper(key),
		Raw:   string(key),
	}
	if d, ok := Decompose(key); ok {
		l.Base, l.Mod, l.Tone = d.Base, d.Mod, d.Tone
	}
	return l
}

// Rune renders the letter as its precomposed rune, restoring case.
func (l Letter) Rune() rune {
	r, ok := Compose(l.Base, l.Mod, l.Tone)
	if !ok {
		r = l.Base
	}
	if l.Upper {
		return unicode.ToUpper(r)
	}
	return r
}

// Host returns the lowercase modified base with no tone. Nucleus pattern
// matching works on host runes so that "hoà" and "hoa" share a pattern.
func (l Letter) Host() rune {
	r, ok := Compose(l.Base, l.Mod, ToneNone)
	if !ok {
		return l.Base
	}
	return r
}

// IsVowel reports whether the letter occupies a vowel position.
func (l Letter) IsVowel() bool {
	return IsVowelBase(l.Base)
}

// Render concatenates the rendered runes of a letter sequence.
func Render(letters []Letter) string {
	var b strings.Builder
	b.Grow(len(letters) * 2)
	for _, l := range letters {
		b.WriteRune(l.Rune())
	}
	return b.String()
}
