// Package vietflux composes Vietnamese text from Latin keystrokes.
//
// An Engine consumes one key event at a time and answers with the minimal
// edit (backspaces plus replacement text) that turns the previously emitted
// text into the new composition. It understands the Telex and VNI typing
// conventions, places tones by syllable structure rather than keystroke
// order (the tone of được lands on ơ, not on the last-typed vowel),
// degrades gracefully on non-Vietnamese input, and restores the raw
// keystrokes at word boundaries when the composed result could not be a
// Vietnamese syllable (new stays new, not neư).
//
// One Engine serves one composition session and is not safe for concurrent
// use; independent sessions get independent Engines and share nothing but
// read-only method and shortcut tables.
//
//	e := vietflux.New(vietflux.WithMethod(vietflux.Telex))
//	for _, r := range "tieengs vieetj " {
//		res := e.ProcessKey(vietflux.KeyEvent{Rune: r})
//		apply(res.Backspace, res.Output) // erase, then insert
//	}
//	// screen now reads "tiếng việt "
package vietflux
