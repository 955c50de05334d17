package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
)

// Scenario defines one conformance scenario: an engine configuration, a key
// script, and the expectations over what typing it produces.
type Scenario struct {
	// Name uniquely identifies this scenario; golden fixtures use it as the
	// file stem.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Method is the typing convention: telex, vni, or auto. Default telex.
	Method string `yaml:"method,omitempty"`

	// Style is the tone placement: modern or traditional. Default modern.
	Style string `yaml:"style,omitempty"`

	// QuickTelex enables the doubled-consonant cluster spellings.
	QuickTelex bool `yaml:"quick_telex,omitempty"`

	// Options are the recorded caller-owned toggles.
	Options OptionFlags `yaml:"options,omitempty"`

	// Shortcuts lists abbreviation entries installed for this scenario.
	Shortcuts []ShortcutEntry `yaml:"shortcuts,omitempty"`

	// Keys is the key script. Plain runes are typed as-is; escapes: \b for
	// backspace, \e for escape, \\ for a literal backslash.
	Keys string `yaml:"keys"`

	// Expect holds the assertions evaluated after the script runs.
	Expect Expect `yaml:"expect"`
}

// OptionFlags mirrors the engine's cosmetic toggles for YAML.
type OptionFlags struct {
	AutoCapitalize bool `yaml:"auto_capitalize,omitempty"`
	SmartQuotes    bool `yaml:"smart_quotes,omitempty"`
	SpellCheck     bool `yaml:"spell_check,omitempty"`
}

// ShortcutEntry is one abbreviation rule.
type ShortcutEntry struct {
	Trigger   string `yaml:"trigger"`
	Expansion string `yaml:"expansion"`

	// When is "boundary" (default) or "immediate".
	When string `yaml:"when,omitempty"`
}

// Expect holds a scenario's assertions. Text is always checked; Buffer and
// Steps only when present.
type Expect struct {
	// Text is the full emitted text after the script, as a host applying
	// every Result would display it.
	Text string `yaml:"text"`

	// Buffer, when set, is the composing buffer left after the script
	// (nothing was committed yet). Use "" to assert the buffer is empty.
	Buffer *string `yaml:"buffer,omitempty"`

	// Steps spot-check individual keystrokes by seq.
	Steps []StepCheck `yaml:"steps,omitempty"`
}

// StepCheck asserts on one keystroke's result. Only the fields present in
// the YAML are compared.
type StepCheck struct {
	// Seq is the 1-based keystroke index within the script.
	Seq int64 `yaml:"seq"`

	// Action is the expected action name: none, update, or commit.
	Action string `yaml:"action,omitempty"`

	// Output is the expected inserted text.
	Output *string `yaml:"output,omitempty"`

	// Backspace is the expected erase count.
	Backspace *int `yaml:"backspace,omitempty"`

	// Buffer is the expected composing buffer after the key.
	Buffer *string `yaml:"buffer,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected, which catches typos like "expects:" for "expect:".
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if err := validateScenario(&sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &sc, nil
}

// validateScenario checks required fields and enum values before any key is
// typed, so a bad file fails fast with a field-level message.
func validateScenario(sc *Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if sc.Description == "" {
		return fmt.Errorf("description is required")
	}
	if sc.Keys == "" {
		return fmt.Errorf("keys is required")
	}

	if sc.Method != "" {
		if _, err := method.Parse(sc.Method); err != nil {
			return fmt.Errorf("method: %w", err)
		}
	}
	if sc.Style != "" {
		if _, ok := syllable.ParseStyle(sc.Style); !ok {
			return fmt.Errorf("style: unknown tone style %q (want modern or traditional)", sc.Style)
		}
	}

	for i, e := range sc.Shortcuts {
		if e.Trigger == "" {
			return fmt.Errorf("shortcuts[%d]: trigger is required", i)
		}
		if e.Expansion == "" {
			return fmt.Errorf("shortcuts[%d]: expansion is required", i)
		}
		if e.When != "" {
			if _, err := shortcut.ParseCondition(e.When); err != nil {
				return fmt.Errorf("shortcuts[%d]: %w", i, err)
			}
		}
	}

	for i, step := range sc.Expect.Steps {
		if step.Seq < 1 {
			return fmt.Errorf("expect.steps[%d]: seq must be >= 1", i)
		}
		switch step.Action {
		case "", "none", "update", "commit":
		default:
			return fmt.Errorf("expect.steps[%d]: unknown action %q", i, step.Action)
		}
		if step.Action == "" && step.Output == nil && step.Backspace == nil && step.Buffer == nil {
			return fmt.Errorf("expect.steps[%d]: no fields to check", i)
		}
	}

	return nil
}
