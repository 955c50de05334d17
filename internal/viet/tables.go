package viet

import "unicode"

// modified maps a modifier and base letter to the modified base form.
// These are the only (mod, base) pairs that exist in the alphabet.
var modified = map[Mod]map[rune]rune{
	ModCircumflex: {'a': 'â', 'e': 'ê', 'o': 'ô'},
	ModBreve:      {'a': 'ă'},
	ModHorn:       {'o': 'ơ', 'u': 'ư'},
	ModStroke:     {'d': 'đ'},
}

// toned maps a (possibly modified) vowel to its five toned forms, indexed
// by Tone-1. đ never takes a tone and is absent.
var toned = map[rune][5]rune{
	'a': {'á', 'à', 'ả', 'ã', 'ạ'},
	'â': {'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'ă': {'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'e': {'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// Decomposed is the (base, mod, tone) triple behind a composed rune.
type Decomposed struct {
	Base rune
	Mod  Mod
	Tone Tone
}

// decomposeTable inverts modified and toned for every rune that carries at
// least one diacritic. Built once at init.
var decomposeTable = buildDecomposeTable()

func buildDecomposeTable() map[rune]Decomposed {
	table := make(map[rune]Decomposed, 80)
	for mod, bases := range modified {
		for base, r := range bases {
			table[r] = Decomposed{Base: base, Mod: mod}
		}
	}
	// Plain and modified vowels with each tone.
	for host, forms := range toned {
		base, mod := host, ModNone
		if d, ok := table[host]; ok {
			base, mod = d.Base, d.Mod
		}
		for i, r := range forms {
			table[r] = Decomposed{Base: base, Mod: mod, Tone: Tone(i + 1)}
		}
	}
	return table
}

// Compose returns the precomposed rune for a lowercase base letter with the
// given modifier and tone. It reports false when the combination does not
// exist in the alphabet (ư with circumflex, đ with a tone, and so on).
func Compose(base rune, mod Mod, tone Tone) (rune, bool) {
	host := base
	if mod != ModNone {
		h, ok := modified[mod][base]
		if !ok {
			return 0, false
		}
		host = h
	}
	if tone == ToneNone {
		return host, true
	}
	forms, ok := toned[host]
	if !ok || int(tone) > len(forms) {
		return 0, false
	}
	return forms[tone-1], true
}

// Decompose splits a composed Vietnamese rune into its base letter,
// modifier, and tone. Case is folded; the second return is false for runes
// that carry no Vietnamese diacritic.
func Decompose(r rune) (Decomposed, bool) {
	d, ok := decomposeTable[unicode.ToLower(r)]
	return d, ok
}

// IsVowelBase reports whether a lowercase base letter can host a nucleus
// position. y counts: it is vocalic in syllables like "ly" and "uyên".
func IsVowelBase(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// HasComposed reports whether any rune in s carries a Vietnamese diacritic
// (a tone, a vowel modifier, or the đ stroke).
func HasComposed(s string) bool {
	for _, r := range s {
		if _, ok := Decompose(r); ok {
			return true
		}
	}
	return false
}
