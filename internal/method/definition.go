package method

import "fmt"

// Definition is a compiled custom keymap: a named set of per-key intent
// chains layered over a stock convention. Keys present in the definition
// resolve to their chain verbatim; everything else falls through to the
// base table (or to plain literals when Base names no convention).
type Definition struct {
	Name string
	Base Method
	// NoBase disables fallthrough: unmapped keys are plain literals.
	NoBase bool
	Keys   map[rune][]Intent
}

// Validate checks structural soundness after compilation.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("keymap: name is required")
	}
	for key, chain := range d.Keys {
		if len(chain) == 0 {
			return fmt.Errorf("keymap %s: key %q maps to an empty chain", d.Name, key)
		}
		for _, in := range chain {
			if in.Kind == IntentLiteral && in.Rune == 0 {
				return fmt.Errorf("keymap %s: key %q has a literal with no rune", d.Name, key)
			}
		}
	}
	return nil
}

// Table binds the definition to its base table.
func (d *Definition) Table() Table {
	t := definitionTable{def: d}
	if !d.NoBase {
		t.base = TableFor(d.Base)
	}
	return t
}

type definitionTable struct {
	def  *Definition
	base Table
}

// Method implements Table. A definition reports the convention it extends.
func (t definitionTable) Method() Method {
	if t.base != nil {
		return t.base.Method()
	}
	return Telex
}

// Resolve implements Table.
func (t definitionTable) Resolve(key rune, ctx Context) []Intent {
	if chain, ok := t.def.Keys[key]; ok {
		return chain
	}
	if t.base != nil {
		return t.base.Resolve(key, ctx)
	}
	return nil
}
