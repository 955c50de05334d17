package method

import "github.com/ThanhNguyxn/vietflux-ime/internal/viet"

// TelexTable implements the UniKey Telex convention:
//
//	s f r x j   tones (sắc huyền hỏi ngã nặng)
//	aa ee oo    circumflex
//	w           horn on o/u, breve on a, ư when neither fits
//	dd          đ
//	z           clear tone
//
// Quick, when set, adds the double-consonant expansions cc -> ch, gg -> gh,
// kk -> kh, nn -> nh, pp -> ph, tt -> th, qq -> qu. Off by default: the
// expansions fire on plain English doublings ("accord"), so they are a
// deliberate opt-in.
type TelexTable struct {
	Quick bool
}

// quickTelex maps a doubled consonant to the literal that completes its
// cluster (cc -> ch types an h after the first c).
var quickTelex = map[rune]rune{
	'c': 'h', 'g': 'h', 'k': 'h', 'n': 'h', 'p': 'h', 't': 'h',
	'q': 'u',
}

// Method implements Table.
func (TelexTable) Method() Method { return Telex }

// Resolve implements Table. Doubling triggers (aa, dd, and the quick
// consonants) fire only when the previous letter has the same base; that
// keeps "lana" literal while "vieet" composes.
func (t TelexTable) Resolve(key rune, ctx Context) []Intent {
	switch key {
	case 's':
		return []Intent{ApplyTone(viet.ToneAcute)}
	case 'f':
		return []Intent{ApplyTone(viet.ToneGrave)}
	case 'r':
		return []Intent{ApplyTone(viet.ToneHook)}
	case 'x':
		return []Intent{ApplyTone(viet.ToneTilde)}
	case 'j':
		return []Intent{ApplyTone(viet.ToneDot)}
	case 'z':
		return []Intent{ClearTone()}

	case 'a', 'e', 'o':
		if prev, _, ok := ctx.LastLetter(); ok && prev == key {
			return []Intent{ModifyBase(viet.ModCircumflex, key)}
		}
		return nil

	case 'w':
		// The transform locates its target anywhere in the nucleus, so the
		// chain is unconditional: w after a final consonant still horns
		// mượn and breves trăng. With no vowel to take either mark, the key
		// types ư itself.
		return []Intent{
			Modify(viet.ModHorn),
			Modify(viet.ModBreve),
			Literal('ư'),
		}

	case 'd':
		if prev, _, ok := ctx.LastLetter(); ok && prev == 'd' {
			return []Intent{Modify(viet.ModStroke)}
		}
		return nil
	}

	if t.Quick {
		if second, isQuick := quickTelex[key]; isQuick {
			if prev, mod, ok := ctx.LastLetter(); ok && prev == key && mod == viet.ModNone {
				return []Intent{Literal(second)}
			}
		}
	}
	return nil
}
