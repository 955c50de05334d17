package harness

import (
	"fmt"
	"io"
	"log/slog"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
	"github.com/ThanhNguyxn/vietflux-ime/internal/testutil"
)

// Run executes a scenario against a fresh engine and returns its result.
// An error means the scenario could not run at all (bad script, bad
// configuration); failed expectations land in Result.Errors instead.
func Run(sc *Scenario) (*Result, error) {
	events, err := testutil.ParseScript(sc.Keys)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	opts, err := engineOptions(sc)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	eng := vietflux.New(opts...)

	result := NewResult()
	screen := &testutil.Screen{}
	for _, ev := range events {
		res := eng.ProcessKey(ev)
		screen.Apply(res)
		result.Trace = append(result.Trace, TraceEvent{
			Seq:       eng.Seq(),
			Key:       ev.String(),
			Action:    res.Action.String(),
			Output:    res.Output,
			Backspace: res.Backspace,
			Buffer:    eng.Buffer(),
			Text:      screen.String(),
		})
	}

	result.FinalText = screen.String()
	result.FinalBuffer = eng.Buffer()
	for _, msg := range evaluateExpect(&sc.Expect, result) {
		result.AddError(msg)
	}

	return result, nil
}

// engineOptions lowers a scenario's configuration to engine options.
// Validation already vetted the enum fields; parse errors here mean the
// scenario bypassed LoadScenario.
func engineOptions(sc *Scenario) ([]vietflux.Option, error) {
	var opts []vietflux.Option

	if sc.Method != "" {
		m, err := method.Parse(sc.Method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vietflux.WithMethod(m))
	}
	if sc.Style != "" {
		st, ok := syllable.ParseStyle(sc.Style)
		if !ok {
			return nil, fmt.Errorf("unknown tone style %q", sc.Style)
		}
		opts = append(opts, vietflux.WithToneStyle(st))
	}
	if sc.QuickTelex {
		opts = append(opts, vietflux.WithQuickTelex(true))
	}
	opts = append(opts, vietflux.WithOptions(vietflux.Options{
		AutoCapitalize: sc.Options.AutoCapitalize,
		SmartQuotes:    sc.Options.SmartQuotes,
		SpellCheck:     sc.Options.SpellCheck,
	}))

	if len(sc.Shortcuts) > 0 {
		table := shortcut.New()
		for i, e := range sc.Shortcuts {
			entry := shortcut.Entry{Trigger: e.Trigger, Expansion: e.Expansion}
			if e.When != "" {
				cond, err := shortcut.ParseCondition(e.When)
				if err != nil {
					return nil, fmt.Errorf("shortcuts[%d]: %w", i, err)
				}
				entry.When = cond
			}
			if err := table.Add(entry); err != nil {
				return nil, fmt.Errorf("shortcuts[%d]: %w", i, err)
			}
		}
		opts = append(opts, vietflux.WithShortcuts(table))
	}

	// Scenario runs keep the engine's per-key debug log quiet.
	opts = append(opts, vietflux.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	return opts, nil
}
