package method

import "unicode"

// Choose implements the Auto policy: pick the convention for a word from
// the raw keys typed so far. The first key that composes under exactly one
// convention decides — digits belong to VNI, the reserved Telex letters and
// doubled vowels to Telex — and with no signal yet the word is treated as
// Telex. The scan is a pure function of the raw prefix, so backspace replay
// re-derives the same choice at every step.
func Choose(raw []rune) Method {
	var prev rune
	for _, r := range raw {
		key := unicode.ToLower(r)
		switch {
		case key >= '0' && key <= '9':
			return VNI
		case telexReserved(key):
			return Telex
		case key == prev && doublingTrigger(key):
			return Telex
		}
		prev = key
	}
	return Telex
}

// telexReserved reports keys that compose only under Telex.
func telexReserved(key rune) bool {
	switch key {
	case 's', 'f', 'r', 'x', 'j', 'z', 'w':
		return true
	}
	return false
}

// doublingTrigger reports keys whose doubling composes under Telex.
func doublingTrigger(key rune) bool {
	switch key {
	case 'a', 'e', 'o', 'd':
		return true
	}
	return false
}
