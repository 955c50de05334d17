// Package method maps raw keys to edit intents under the Telex and VNI
// typing conventions.
//
// Tables are pure: a key plus a read-only view of the composing buffer
// resolves to an ordered chain of intents, and the engine applies the first
// one that holds up. Tables never mutate anything and never decide
// admissibility; a key whose chain cannot apply lands as a literal.
package method

import "fmt"

// Method selects a typing convention.
type Method uint8

const (
	// Telex composes diacritics from repeated and reserved letters
	// (aa -> â, w -> horn, s/f/r/x/j -> tones).
	Telex Method = iota
	// VNI composes diacritics from digits (6 -> circumflex, 1..5 -> tones).
	VNI
	// Auto locks onto Telex or VNI per word, from the first key that
	// unambiguously belongs to one convention.
	Auto
)

var methodNames = [...]string{"telex", "vni", "auto"}

// String implements fmt.Stringer.
func (m Method) String() string {
	if int(m) >= len(methodNames) {
		return fmt.Sprintf("method(%d)", uint8(m))
	}
	return methodNames[m]
}

// Parse resolves a method name as used in flags, scenario files, and
// keymap definitions.
func Parse(s string) (Method, error) {
	for i, name := range methodNames {
		if s == name {
			return Method(i), nil
		}
	}
	return Telex, fmt.Errorf("unknown method %q (want telex, vni, or auto)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
