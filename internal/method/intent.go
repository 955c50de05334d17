package method

import (
	"fmt"

	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

// IntentKind discriminates the Intent variants.
type IntentKind uint8

const (
	// IntentLiteral appends a rune to the buffer as typed.
	IntentLiteral IntentKind = iota
	// IntentModify attaches a vowel modifier (or the đ stroke) to a letter
	// already in the buffer.
	IntentModify
	// IntentTone places a tone mark on the nucleus.
	IntentTone
	// IntentClearTone removes the tone mark, if any.
	IntentClearTone
)

var intentKindNames = [...]string{"literal", "modify", "tone", "clear-tone"}

// String implements fmt.Stringer.
func (k IntentKind) String() string {
	if int(k) >= len(intentKindNames) {
		return fmt.Sprintf("intent(%d)", uint8(k))
	}
	return intentKindNames[k]
}

// Intent is one edit a key asks for. Exactly the fields of the active
// variant are meaningful: Rune for IntentLiteral, Mod (and the optional
// Target base) for IntentModify, Tone for IntentTone.
type Intent struct {
	Kind   IntentKind
	Rune   rune
	Mod    viet.Mod
	Tone   viet.Tone
	Target rune // IntentModify only: restrict to letters with this base; 0 = any
}

// String renders the intent for logs and traces.
func (in Intent) String() string {
	switch in.Kind {
	case IntentLiteral:
		return fmt.Sprintf("literal(%c)", in.Rune)
	case IntentModify:
		if in.Target != 0 {
			return fmt.Sprintf("modify(%s,%c)", in.Mod, in.Target)
		}
		return fmt.Sprintf("modify(%s)", in.Mod)
	case IntentTone:
		return fmt.Sprintf("tone(%s)", in.Tone)
	case IntentClearTone:
		return "clear-tone"
	default:
		return fmt.Sprintf("intent(%d)", uint8(in.Kind))
	}
}

// Literal builds an IntentLiteral.
func Literal(r rune) Intent { return Intent{Kind: IntentLiteral, Rune: r} }

// Modify builds an IntentModify with no target restriction.
func Modify(m viet.Mod) Intent { return Intent{Kind: IntentModify, Mod: m} }

// ModifyBase builds an IntentModify restricted to letters with the given base.
func ModifyBase(m viet.Mod, base rune) Intent {
	return Intent{Kind: IntentModify, Mod: m, Target: base}
}

// ApplyTone builds an IntentTone.
func ApplyTone(t viet.Tone) Intent { return Intent{Kind: IntentTone, Tone: t} }

// ClearTone builds an IntentClearTone.
func ClearTone() Intent { return Intent{Kind: IntentClearTone} }

// Context is the read-only buffer view a table consults while resolving a
// key. *syllable.Syllable satisfies it.
type Context interface {
	// LastLetter reports the base rune and modifier of the most recent
	// letter, with ok false on an empty buffer.
	LastLetter() (base rune, mod viet.Mod, ok bool)
}

// Table resolves keys for one convention.
//
// Resolve returns the intent chain for a key: the engine applies the first
// intent that holds up and falls back through the rest; an empty chain
// means the key is a plain literal. The key arrives lowercased, with case
// restored by the engine on whatever letter the intent produces.
type Table interface {
	Method() Method
	Resolve(key rune, ctx Context) []Intent
}

// TableFor returns the stock table for a convention. Auto has no table of
// its own; callers pick per word via Choose.
func TableFor(m Method) Table {
	switch m {
	case VNI:
		return vniTable{}
	default:
		return TelexTable{}
	}
}
