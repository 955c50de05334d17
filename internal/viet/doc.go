// Package viet defines the Vietnamese character model: tone marks, vowel
// modifiers, and the Letter value that carries them through composition.
//
// This package contains the alphabet tables and nothing else. All other
// internal packages import viet; viet imports no internal package, which
// keeps the character model the foundational layer with no cycles.
//
// Invariants:
//   - Compose emits precomposed (NFC) runes only; decomposed sequences
//     never leave this package.
//   - A Letter holds at most one modifier and one tone.
//   - Stroke applies to 'd' alone and never combines with a tone.
package viet
