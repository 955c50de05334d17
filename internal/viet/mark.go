package viet

import "fmt"

// Tone is one of the five Vietnamese tone marks, or ToneNone for the level
// tone (thanh ngang), which carries no diacritic.
type Tone uint8

const (
	ToneNone  Tone = iota
	ToneAcute      // sắc
	ToneGrave      // huyền
	ToneHook       // hỏi
	ToneTilde      // ngã
	ToneDot        // nặng
)

// toneNames indexes Tone for String and ParseTone.
var toneNames = [...]string{"none", "acute", "grave", "hook", "tilde", "dot"}

// String implements fmt.Stringer.
func (t Tone) String() string {
	if int(t) >= len(toneNames) {
		return fmt.Sprintf("tone(%d)", uint8(t))
	}
	return toneNames[t]
}

// ParseTone parses a tone name as produced by String.
func ParseTone(s string) (Tone, error) {
	for i, name := range toneNames {
		if s == name {
			return Tone(i), nil
		}
	}
	return ToneNone, fmt.Errorf("unknown tone %q", s)
}

// Mod is a vowel modifier that changes a base letter's identity, or the
// consonant stroke that turns d into đ. A letter carries at most one.
type Mod uint8

const (
	ModNone       Mod = iota
	ModCircumflex     // â ê ô
	ModBreve          // ă
	ModHorn           // ơ ư
	ModStroke         // đ
)

var modNames = [...]string{"none", "circumflex", "breve", "horn", "stroke"}

// String implements fmt.Stringer.
func (m Mod) String() string {
	if int(m) >= len(modNames) {
		return fmt.Sprintf("mod(%d)", uint8(m))
	}
	return modNames[m]
}

// ParseMod parses a modifier name as produced by String.
func ParseMod(s string) (Mod, error) {
	for i, name := range modNames {
		if s == name {
			return Mod(i), nil
		}
	}
	return ModNone, fmt.Errorf("unknown modifier %q", s)
}

// Targets returns the base letters the modifier can attach to.
func (m Mod) Targets() []rune {
	switch m {
	case ModCircumflex:
		return []rune{'a', 'e', 'o'}
	case ModBreve:
		return []rune{'a'}
	case ModHorn:
		return []rune{'o', 'u'}
	case ModStroke:
		return []rune{'d'}
	default:
		return nil
	}
}

// CanAttach reports whether the modifier is defined for the given base.
func (m Mod) CanAttach(base rune) bool {
	for _, t := range m.Targets() {
		if t == base {
			return true
		}
	}
	return false
}
