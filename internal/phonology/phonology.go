// Package phonology decides whether a composing word could be a Vietnamese
// syllable. It gates transforms (a modifier that would create an impossible
// nucleus degrades to a literal) and drives the commit-time restoration
// that turns a spuriously transformed "neư" back into "new".
//
// This is structural spelling, not a dictionary: the allow-lists accept
// every syllable the orthography permits, including ones no word uses.
package phonology

import (
	"strings"
	"unicode"

	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

// Reason classifies a failed admission check.
type Reason uint8

const (
	OK Reason = iota
	// BadInitial: the leading consonant cluster is not Vietnamese.
	BadInitial
	// BadNucleus: the vowel sequence matches no recognized pattern.
	BadNucleus
	// BadFinal: the trailing consonant cluster cannot close a syllable.
	BadFinal
	// BadRhyme: nucleus and final are both fine but never combine.
	BadRhyme
	// BadSpelling: an initial/vowel pairing the orthography forbids
	// (c before i, g before e, ngh before o).
	BadSpelling
	// Broken: letters resume after the final cluster, so the word has no
	// syllable structure at all.
	Broken
)

var reasonNames = [...]string{
	"ok", "bad-initial", "bad-nucleus", "bad-final", "bad-rhyme", "bad-spelling", "broken",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if int(r) >= len(reasonNames) {
		return "invalid"
	}
	return reasonNames[r]
}

// validInitials is the full set of Vietnamese initial consonant clusters,
// the empty cluster included.
var validInitials = map[string]bool{
	"": true,
	"b": true, "c": true, "ch": true, "d": true, "đ": true,
	"g": true, "gh": true, "gi": true, "h": true,
	"k": true, "kh": true, "l": true, "m": true, "n": true,
	"ng": true, "ngh": true, "nh": true,
	"p": true, "ph": true, "q": true, "qu": true, "r": true,
	"s": true, "t": true, "th": true, "tr": true, "v": true, "x": true,
}

// validFinals is the set of syllable-closing clusters.
var validFinals = map[string]bool{
	"": true, "c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// validNuclei lists every vowel pattern the orthography recognizes, as
// modified hosts with tones stripped. Impossible runs like eư, oư, and ou —
// the shapes English input leaves behind — are absent and fail the lookup.
var validNuclei = map[string]bool{
	// single vowels
	"a": true, "ă": true, "â": true, "e": true, "ê": true, "i": true,
	"o": true, "ô": true, "ơ": true, "u": true, "ư": true, "y": true,
	// diphthongs
	"ai": true, "ao": true, "au": true, "ay": true, "âu": true, "ây": true,
	"eo": true, "êu": true,
	"ia": true, "iê": true, "iu": true,
	"oa": true, "oă": true, "oe": true, "oi": true, "oo": true, "ôi": true, "ơi": true,
	"ua": true, "uâ": true, "uê": true, "ui": true, "uo": true, "uô": true, "uơ": true, "uy": true, "ươ": true,
	"ưa": true, "ưi": true, "ưu": true,
	"ya": true, "yê": true,
	// triphthongs
	"iêu": true, "oai": true, "oay": true, "oeo": true, "uây": true,
	"uôi": true, "ươi": true, "ươu": true, "yêu": true,
	"uya": true, "uyê": true, "uyu": true,
}

// rhymes maps each final cluster to the nucleus-ending vowels it closes.
// Compound-only rhymes that the last vowel alone would not license are
// listed in rhymeOverrides instead.
var rhymes = map[string]string{
	"c":  "aăâeoôuư",
	"ch": "aêiy",
	"m":  "aăâeêioôơuư",
	"n":  "aăâeêioôơu",
	"ng": "aăâeoôuư",
	"nh": "aêiy",
	"p":  "aăâeêioôơu",
	"t":  "aăâeêioôơuưy",
}

// rhymeOverrides admits full nucleus+final rhymes whose last vowel is
// otherwise closed to that final (việc, nghiêng, ước, ương).
var rhymeOverrides = map[string]bool{
	"iêc": true, "iêng": true, "yêng": true, "ươc": true, "ương": true,
}

// IsAdmissible reports whether the word could be a Vietnamese syllable.
func IsAdmissible(s *syllable.Syllable) bool {
	return Check(s) == OK
}

// Check is IsAdmissible with the failing rule, for logs and traces.
func Check(s *syllable.Syllable) Reason {
	letters := s.Letters()
	if len(letters) == 0 {
		return OK
	}
	sh := s.Shape()

	initial := hosts(letters[:sh.InitialEnd])
	if !validInitials[initial] {
		return BadInitial
	}
	if sh.InitialEnd == len(letters) {
		// A bare consonant cluster (đ mid-word, a lone ng) is still on its
		// way to a syllable.
		return OK
	}
	if sh.FinalEnd != len(letters) {
		return Broken
	}

	nucleus := hosts(letters[sh.InitialEnd:sh.NucleusEnd])
	if !validNuclei[nucleus] {
		return BadNucleus
	}
	final := hosts(letters[sh.NucleusEnd:sh.FinalEnd])
	if !validFinals[final] {
		return BadFinal
	}
	if final != "" && !rhymeOverrides[nucleus+final] {
		last, _ := lastRune(nucleus)
		if !strings.ContainsRune(rhymes[final], last) {
			return BadRhyme
		}
	}
	if bad := spelling(initial, nucleus); bad {
		return BadSpelling
	}
	return OK
}

// spelling enforces the initial/vowel pairing rules: c and k split the
// vowel space between them, as do g/gh and ng/ngh. g before i is legal —
// that is the gi- initial or the word gì.
func spelling(initial, nucleus string) bool {
	first, ok := firstRune(nucleus)
	if !ok {
		return false
	}
	frontK := first == 'e' || first == 'ê' || first == 'i' || first == 'y'
	frontGH := first == 'e' || first == 'ê' || first == 'i'
	switch initial {
	case "c":
		return frontK
	case "k":
		return !frontK
	case "g":
		return first == 'e' || first == 'ê'
	case "gh":
		return !frontGH
	case "ng":
		return frontGH
	case "ngh":
		return !frontGH
	}
	return false
}

// hosts renders letters as their lowercase modified bases, tones stripped.
func hosts(letters []viet.Letter) string {
	var b strings.Builder
	for _, l := range letters {
		b.WriteRune(l.Host())
	}
	return b.String()
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func lastRune(s string) (rune, bool) {
	var last rune
	var ok bool
	for _, r := range s {
		last, ok = r, true
	}
	return last, ok
}

// boundaryPunct is the punctuation that ends a word, in addition to all
// Unicode whitespace.
const boundaryPunct = ".,!?:;\"'()[]{}<>/\\=+-*@#$%^&|~`"

// IsWordBreak reports whether the rune commits the composing word.
func IsWordBreak(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(boundaryPunct, r)
}
