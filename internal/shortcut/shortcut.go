// Package shortcut implements abbreviation expansion: short typed tokens
// (ko, vn) replaced by full Vietnamese text (không, Việt Nam).
//
// A Table is built once (stock defaults or a YAML file) and read on every
// commit; mutation is not safe concurrently with lookups. Matching is
// case-insensitive and the expansion inherits the case style of the typed
// token: ko → không, Ko → Không, KO → KHÔNG.
package shortcut

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/derekparker/trie"

	"github.com/ThanhNguyxn/vietflux-ime/internal/phonology"
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

// MaxExpansion caps the expansion length in runes.
const MaxExpansion = 63

// Condition selects when an entry fires.
type Condition uint8

const (
	// OnWordBoundary expands the token when the word commits.
	OnWordBoundary Condition = iota
	// Immediate expands mid-word, as soon as the raw token matches.
	Immediate
)

var conditionNames = [...]string{"boundary", "immediate"}

// String implements fmt.Stringer.
func (c Condition) String() string {
	if int(c) >= len(conditionNames) {
		return "invalid"
	}
	return conditionNames[c]
}

// ParseCondition parses a condition name. The empty string is the default,
// OnWordBoundary.
func ParseCondition(s string) (Condition, error) {
	switch s {
	case "", "boundary":
		return OnWordBoundary, nil
	case "immediate":
		return Immediate, nil
	}
	return OnWordBoundary, fmt.Errorf("unknown trigger condition %q", s)
}

// Entry is a single trigger → expansion rule.
type Entry struct {
	// Trigger is the typed token, stored lowercase.
	Trigger string
	// Expansion is the replacement text, NFC-normalized.
	Expansion string
	// When selects boundary or immediate expansion.
	When Condition
	// Disabled entries stay in the table but never match.
	Disabled bool
}

// Table holds shortcut entries with exact and prefix lookup.
type Table struct {
	entries map[string]Entry
	keys    *trie.Trie
}

// New returns an empty table.
func New() *Table {
	return &Table{
		entries: make(map[string]Entry),
		keys:    trie.New(),
	}
}

// Defaults returns the stock table of common texting abbreviations.
func Defaults() *Table {
	t := New()
	for _, e := range []Entry{
		{Trigger: "ko", Expansion: "không"},
		{Trigger: "dc", Expansion: "được"},
		{Trigger: "vs", Expansion: "với"},
		{Trigger: "ng", Expansion: "người"},
		{Trigger: "ntn", Expansion: "như thế nào"},
		{Trigger: "bt", Expansion: "bình thường"},
		{Trigger: "vd", Expansion: "ví dụ"},
		{Trigger: "tg", Expansion: "thời gian"},
		{Trigger: "nc", Expansion: "nước"},
		{Trigger: "ck", Expansion: "chồng"},
		{Trigger: "vk", Expansion: "vợ"},
		{Trigger: "ny", Expansion: "người yêu"},
		{Trigger: "nyc", Expansion: "người yêu cũ"},
		{Trigger: "vn", Expansion: "Việt Nam"},
		{Trigger: "hcm", Expansion: "Hồ Chí Minh"},
		{Trigger: "hn", Expansion: "Hà Nội"},
	} {
		// Stock entries are static; a failure here is a programming error.
		if err := t.Add(e); err != nil {
			panic(err)
		}
	}
	return t
}

// Add inserts an entry, replacing any existing entry with the same trigger.
// The trigger is lowercased and the expansion NFC-normalized.
func (t *Table) Add(e Entry) error {
	e.Trigger = strings.ToLower(strings.TrimSpace(e.Trigger))
	if e.Trigger == "" {
		return fmt.Errorf("shortcut trigger is empty")
	}
	for _, r := range e.Trigger {
		if phonology.IsWordBreak(r) {
			return fmt.Errorf("shortcut trigger %q contains word boundary %q", e.Trigger, r)
		}
	}
	e.Expansion = viet.Canonical(e.Expansion)
	if e.Expansion == "" {
		return fmt.Errorf("shortcut %q has no expansion", e.Trigger)
	}
	if n := utf8.RuneCountInString(e.Expansion); n > MaxExpansion {
		return fmt.Errorf("shortcut %q expansion is %d runes, max %d", e.Trigger, n, MaxExpansion)
	}
	t.entries[e.Trigger] = e
	t.keys.Add(e.Trigger, true)
	return nil
}

// Remove deletes the entry for trigger, reporting whether it existed.
func (t *Table) Remove(trigger string) bool {
	trigger = strings.ToLower(trigger)
	if _, ok := t.entries[trigger]; !ok {
		return false
	}
	delete(t.entries, trigger)
	t.keys.Remove(trigger)
	return true
}

// SetEnabled flips an entry without removing it, reporting whether the
// trigger exists.
func (t *Table) SetEnabled(trigger string, enabled bool) bool {
	trigger = strings.ToLower(trigger)
	e, ok := t.entries[trigger]
	if !ok {
		return false
	}
	e.Disabled = !enabled
	t.entries[trigger] = e
	return true
}

// Len reports the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns all entries sorted by trigger.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trigger < out[j].Trigger })
	return out
}

// Completions returns the triggers starting with prefix, sorted.
func (t *Table) Completions(prefix string) []string {
	if t == nil {
		return nil
	}
	matches := t.keys.PrefixSearch(strings.ToLower(prefix))
	sort.Strings(matches)
	return matches
}

// Expand resolves a committed word token against all enabled entries.
func (t *Table) Expand(token string) (string, bool) {
	return t.expand(token, false)
}

// ExpandImmediate resolves a mid-word token against Immediate entries only.
func (t *Table) ExpandImmediate(token string) (string, bool) {
	return t.expand(token, true)
}

func (t *Table) expand(token string, immediateOnly bool) (string, bool) {
	if t == nil || token == "" {
		return "", false
	}
	e, ok := t.entries[strings.ToLower(token)]
	if !ok || e.Disabled {
		return "", false
	}
	if immediateOnly && e.When != Immediate {
		return "", false
	}
	return restyle(e.Expansion, token), true
}

// restyle maps the typed token's case onto the expansion: all lower keeps
// the stored text, a capitalized token uppercases the first rune, an
// all-caps token uppercases everything.
func restyle(expansion, token string) string {
	runes := []rune(token)
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	switch {
	case upper == 0:
		return expansion
	case upper == len(runes) && len(runes) > 1:
		return strings.ToUpper(expansion)
	case unicode.IsUpper(runes[0]):
		out := []rune(expansion)
		out[0] = unicode.ToUpper(out[0])
		return string(out)
	default:
		return expansion
	}
}
