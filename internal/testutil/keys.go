// Package testutil provides deterministic helpers shared by the harness,
// trace, and CLI tests: a key-script parser and an emitted-text screen model.
package testutil

import (
	"fmt"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
)

// ParseScript converts a key script into engine events. Plain runes map to
// printable keys; the escapes \b, \e, and \\ map to backspace, escape, and
// a literal backslash.
//
// Scripts appear in scenario YAML and on the compose command line, so the
// same text drives the same keystrokes everywhere.
func ParseScript(script string) ([]vietflux.KeyEvent, error) {
	events := make([]vietflux.KeyEvent, 0, len(script))
	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			events = append(events, vietflux.KeyEvent{Rune: r})
			continue
		}
		i++
		if i == len(runes) {
			return nil, fmt.Errorf("key script ends mid-escape")
		}
		switch runes[i] {
		case 'b':
			events = append(events, vietflux.KeyEvent{Key: vietflux.KeyBackspace})
		case 'e':
			events = append(events, vietflux.KeyEvent{Key: vietflux.KeyEscape})
		case '\\':
			events = append(events, vietflux.KeyEvent{Rune: '\\'})
		default:
			return nil, fmt.Errorf("unknown escape \\%c in key script", runes[i])
		}
	}
	return events, nil
}

// Type parses a key script and feeds it through the engine, applying every
// result to a fresh screen. Returns the final screen text.
func Type(e *vietflux.Engine, script string) (string, error) {
	events, err := ParseScript(script)
	if err != nil {
		return "", err
	}
	s := &Screen{}
	for _, ev := range events {
		s.Apply(e.ProcessKey(ev))
	}
	return s.String(), nil
}
