package vietflux

import (
	"log/slog"
)

// Options are per-session toggles the caller owns. They are recorded and
// exposed for hosts and trace tooling; none of them changes how keystrokes
// compose.
type Options struct {
	// AutoCapitalize: the host capitalizes sentence starts.
	AutoCapitalize bool
	// SmartQuotes: the host substitutes typographic quotes.
	SmartQuotes bool
	// SpellCheck: the host underlines words it cannot find.
	SpellCheck bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMethod selects the typing convention. The default is Telex.
func WithMethod(m Method) Option {
	return func(e *Engine) { e.method = m }
}

// WithToneStyle selects modern (hoà) or traditional (hòa) tone placement.
func WithToneStyle(s ToneStyle) Option {
	return func(e *Engine) { e.style = s }
}

// WithOptions records the caller-owned cosmetic toggles.
func WithOptions(o Options) Option {
	return func(e *Engine) { e.options = o }
}

// WithShortcuts installs an abbreviation table. Nil disables expansion.
// The table is shared read-only; do not mutate it while engines run.
func WithShortcuts(t *ShortcutTable) Option {
	return func(e *Engine) { e.shortcuts = t }
}

// WithQuickTelex enables the doubled-consonant cluster spellings
// (cc -> ch, gg -> gh, qq -> qu). Off by default: English doublings like
// accord would otherwise corrupt.
func WithQuickTelex(on bool) Option {
	return func(e *Engine) { e.quick = on }
}

// WithDefinition installs a custom keymap compiled by CompileKeymap,
// overriding the convention set with WithMethod. An invalid definition is
// logged and ignored; the engine keeps the base convention so typing never
// breaks.
func WithDefinition(def Definition) Option {
	return func(e *Engine) { e.pending = &def }
}

// WithLogger routes the engine's structured logs. The default is
// slog.Default, which drops the per-key debug records unless the handler
// level says otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
