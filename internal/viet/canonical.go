package viet

import "golang.org/x/text/unicode/norm"

// Canonical returns s in NFC form.
//
// The compose tables emit precomposed runes, so engine output is NFC by
// construction. Text that enters from outside (shortcut tables, scenario
// files, CLI arguments) may arrive decomposed and must pass through here
// before it is compared or stored.
func Canonical(s string) string {
	return norm.NFC.String(s)
}
