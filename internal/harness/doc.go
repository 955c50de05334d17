// Package harness runs YAML conformance scenarios against the composition
// engine.
//
// A scenario names an engine configuration (method, tone style, options,
// shortcuts), a key script, and expectations: the final emitted text, the
// final composing buffer, and optional per-keystroke spot checks. Each
// scenario runs on a fresh engine with its own screen model, so scenarios
// are isolated by construction and can run in any order.
//
// The runner records a per-key trace (key, action, output, backspace,
// buffer, screen text). Golden tests serialize that trace as indented JSON
// and compare it against testdata/golden fixtures, which makes any change
// to composition behavior show up as a readable diff.
//
// Scenario files decode strictly: unknown YAML fields are rejected so a
// typo fails the load, not silently skips an assertion.
package harness
