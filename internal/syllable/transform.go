package syllable

import "github.com/ThanhNguyxn/vietflux-ime/internal/viet"

// Style selects the tone placement convention for the oa, oe, and uy
// nuclei: modern puts the mark on the second vowel (hoà), traditional on
// the first (hòa). Everything else places identically under both.
type Style uint8

const (
	StyleModern Style = iota
	StyleTraditional
)

// String implements fmt.Stringer.
func (st Style) String() string {
	if st == StyleTraditional {
		return "traditional"
	}
	return "modern"
}

// ParseStyle parses a style name.
func ParseStyle(s string) (Style, bool) {
	switch s {
	case "modern":
		return StyleModern, true
	case "traditional":
		return StyleTraditional, true
	}
	return StyleModern, false
}

// Outcome reports what a transform did with its trigger key.
type Outcome uint8

const (
	// NoTarget means nothing in the buffer could take the transform; the
	// trigger lands as a literal.
	NoTarget Outcome = iota
	// Applied means the transform landed.
	Applied
	// Undone means the trigger repeated the transform already in place, so
	// it was reverted instead.
	Undone
)

// toneFirst and toneSecond decide placement for two-vowel nuclei that no
// structural rule settles: diphthongs whose tone convention sits on the
// first vowel (mái, sào, mùa) versus the second (hoà, tuệ, tuỳ).
var toneFirst = map[string]bool{
	"ai": true, "ao": true, "au": true, "ay": true,
	"eo": true, "ia": true, "iu": true,
	"oi": true, "ui": true, "ua": true, "ưu": true,
}

var toneSecond = map[string]bool{
	"oa": true, "oe": true, "uê": true, "uy": true, "iê": true, "uô": true,
}

// styleSensitive marks the pairs where traditional style moves the tone
// back to the first vowel.
var styleSensitive = map[string]bool{
	"oa": true, "oe": true, "uy": true,
}

// TonePosition returns the letter index that should carry the tone mark,
// or false when the word has no nucleus.
//
// Placement, in order: a lone vowel takes the mark; a closed syllable (one
// with a final consonant) marks the second vowel; a nucleus with exactly
// one modified vowel marks that vowel (được, chứa, biển); otherwise the
// pair tables above decide, defaulting to the second vowel. Three-vowel
// nuclei mark the sole modified vowel (khuỷu, nguyễn) or the middle one
// (hoài, rượu).
func (s *Syllable) TonePosition(style Style) (int, bool) {
	sh := s.Shape()
	lo, hi := sh.InitialEnd, sh.NucleusEnd
	n := hi - lo
	if n == 0 {
		return 0, false
	}
	if n == 1 {
		return lo, true
	}
	if sh.FinalEnd > sh.NucleusEnd {
		if n == 2 {
			return lo + 1, true
		}
		// uyê and the like keep the mark on their modified vowel even when
		// closed; fall through to the modified-vowel rules.
	}
	if n == 2 {
		first, second := s.letters[lo], s.letters[lo+1]
		switch {
		case first.Mod != viet.ModNone && second.Mod == viet.ModNone:
			return lo, true
		case second.Mod != viet.ModNone && first.Mod == viet.ModNone:
			return lo + 1, true
		}
		pair := string([]rune{first.Host(), second.Host()})
		if toneFirst[pair] {
			return lo, true
		}
		if toneSecond[pair] {
			if style == StyleTraditional && styleSensitive[pair] {
				return lo, true
			}
			return lo + 1, true
		}
		return lo + 1, true
	}
	if n == 3 {
		if i, sole := s.soleModified(lo, hi); sole {
			return i, true
		}
		return lo + 1, true
	}
	return lo + n/2, true
}

// soleModified returns the index of the only modified vowel in
// letters[lo:hi], or false when zero or several carry modifiers.
func (s *Syllable) soleModified(lo, hi int) (int, bool) {
	idx := -1
	for i := lo; i < hi; i++ {
		if s.letters[i].Mod == viet.ModNone {
			continue
		}
		if idx >= 0 {
			return 0, false
		}
		idx = i
	}
	return idx, idx >= 0
}

// ApplyTone places a tone mark. Repeating the tone already present clears
// it instead (double-press undo); a different tone replaces the old one. At
// most one letter carries a tone at any time.
func (s *Syllable) ApplyTone(tone viet.Tone, style Style) Outcome {
	cur, pos := s.currentTone()
	if pos >= 0 && cur == tone {
		s.letters[pos].Tone = viet.ToneNone
		return Undone
	}
	idx, ok := s.TonePosition(style)
	if !ok {
		return NoTarget
	}
	if pos >= 0 {
		s.letters[pos].Tone = viet.ToneNone
	}
	s.letters[idx].Tone = tone
	return Applied
}

// ClearTone removes the tone mark if one is present.
func (s *Syllable) ClearTone() Outcome {
	if _, pos := s.currentTone(); pos >= 0 {
		s.letters[pos].Tone = viet.ToneNone
		return Applied
	}
	return NoTarget
}

// currentTone finds the toned letter, if any.
func (s *Syllable) currentTone() (viet.Tone, int) {
	for i, l := range s.letters {
		if l.Tone != viet.ToneNone {
			return l.Tone, i
		}
	}
	return viet.ToneNone, -1
}

// ApplyModifier attaches mod to the buffer. target, when nonzero, restricts
// the transform to letters with that base (the Telex doubling triggers).
// trigger is the typed key; on apply it joins the modified letter's raw
// keystrokes so a later undo can expand the letter back into plain keys.
//
// Pressing the trigger again right after it applied undoes it: the letter
// just modified dissolves back into its raw keystrokes as literals and the
// trigger is consumed (aaa -> aa, ddd -> dd, ww -> w).
func (s *Syllable) ApplyModifier(mod viet.Mod, target rune, trigger rune) Outcome {
	if n := len(s.letters); n > 0 {
		last := s.letters[n-1]
		if last.Mod == mod && (target == 0 || last.Base == target) {
			s.expandLetter(n - 1)
			return Undone
		}
	}
	switch mod {
	case viet.ModStroke:
		return s.applyStroke(trigger)
	case viet.ModHorn:
		return s.applyHorn(trigger)
	default:
		return s.applyAt(s.rightmostPlain(mod, target), mod, trigger)
	}
}

// applyStroke strokes the first plain d. đ is an initial consonant, so the
// leftmost d is the one that can legitimately take it.
func (s *Syllable) applyStroke(trigger rune) Outcome {
	for i, l := range s.letters {
		if l.Base == 'd' && l.Mod == viet.ModNone {
			return s.applyAt(i, viet.ModStroke, trigger)
		}
	}
	return NoTarget
}

// applyHorn horns the nucleus. An adjacent u+o pair takes the horn on both
// letters at once (the ươ compound of mượn and được); an adjacent u+u pair
// horns the first; otherwise the rightmost plain o or u takes it.
func (s *Syllable) applyHorn(trigger rune) Outcome {
	sh := s.Shape()
	lo, hi := sh.InitialEnd, sh.NucleusEnd
	for i := lo; i+1 < hi; i++ {
		a, b := &s.letters[i], &s.letters[i+1]
		if !hornPair(a.Base, b.Base) {
			continue
		}
		if a.Mod != viet.ModNone && a.Mod != viet.ModHorn {
			continue
		}
		if b.Mod != viet.ModNone && b.Mod != viet.ModHorn {
			continue
		}
		if a.Mod == viet.ModHorn && b.Mod == viet.ModHorn {
			continue
		}
		a.Mod = viet.ModHorn
		b.Mod = viet.ModHorn
		b.Raw += string(trigger)
		return Applied
	}
	for i := lo; i+1 < hi; i++ {
		a, b := s.letters[i], s.letters[i+1]
		if a.Base == 'u' && b.Base == 'u' && a.Mod == viet.ModNone && b.Mod == viet.ModNone {
			return s.applyAt(i, viet.ModHorn, trigger)
		}
	}
	for i := hi - 1; i >= lo; i-- {
		l := s.letters[i]
		if (l.Base == 'o' || l.Base == 'u') && l.Mod == viet.ModNone {
			return s.applyAt(i, viet.ModHorn, trigger)
		}
	}
	return NoTarget
}

// hornPair reports the u/o adjacencies that take the compound horn.
func hornPair(a, b rune) bool {
	return (a == 'u' && b == 'o') || (a == 'o' && b == 'u')
}

// rightmostPlain finds the rightmost unmodified letter the modifier can
// attach to, honoring the target base restriction.
func (s *Syllable) rightmostPlain(mod viet.Mod, target rune) int {
	for i := len(s.letters) - 1; i >= 0; i-- {
		l := s.letters[i]
		if l.Mod != viet.ModNone {
			continue
		}
		if target != 0 && l.Base != target {
			continue
		}
		if mod.CanAttach(l.Base) {
			return i
		}
	}
	return -1
}

// applyAt sets mod on letters[i] and records the trigger keystroke.
func (s *Syllable) applyAt(i int, mod viet.Mod, trigger rune) Outcome {
	if i < 0 {
		return NoTarget
	}
	s.letters[i].Mod = mod
	s.letters[i].Raw += string(trigger)
	return Applied
}

// expandLetter dissolves letters[i] back into its raw keystrokes as plain
// literal letters.
func (s *Syllable) expandLetter(i int) {
	raw := s.letters[i].Raw
	expanded := make([]viet.Letter, 0, len(raw))
	for _, r := range raw {
		expanded = append(expanded, viet.NewLetter(r))
	}
	rest := append(expanded, s.letters[i+1:]...)
	s.letters = append(s.letters[:i], rest...)
}
