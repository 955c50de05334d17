// Package keymap compiles CUE keymap documents into method definitions.
//
// A keymap names the convention it extends and overrides individual keys
// with ordered action chains, e.g. VNI-style digit tones on top of Telex
// doubling. Documents are validated against the embedded #Keymap schema, so
// malformed files fail with positioned errors before anything executes.
//
// Keys in the word-boundary set (space, punctuation) cannot be remapped:
// the boundary commits the word before any table sees the key.
package keymap

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/phonology"
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

//go:embed schema.cue
var schemaSource string

// Load reads and compiles a keymap file.
func Load(path string) (*method.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	return Compile(data, path)
}

// Compile validates a CUE keymap document against the #Keymap schema and
// lowers it to a method.Definition. filename labels error positions.
func Compile(data []byte, filename string) (*method.Definition, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("keymap-schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := doc.Unify(schema.LookupPath(cue.ParsePath("#Keymap")))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	def := &method.Definition{Keys: make(map[rune][]method.Intent)}

	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	def.Name = name

	base, err := v.LookupPath(cue.ParsePath("base")).String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	if base == "none" {
		def.NoBase = true
	} else {
		def.Base, err = method.Parse(base)
		if err != nil {
			return nil, &CompileError{Field: "base", Message: err.Error(), Pos: v.Pos()}
		}
	}

	keysVal := v.LookupPath(cue.ParsePath("keys"))
	if keysVal.Exists() {
		iter, err := keysVal.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			key, err := keyRune(iter.Label(), iter.Value().Pos())
			if err != nil {
				return nil, err
			}
			chain, err := parseChain(iter.Label(), iter.Value())
			if err != nil {
				return nil, err
			}
			def.Keys[key] = chain
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// keyRune checks a key label: exactly one rune, not a word boundary.
// Matching is case-insensitive, so the key is stored lowercase.
func keyRune(label string, pos token.Pos) (rune, error) {
	runes := []rune(label)
	if len(runes) != 1 {
		return 0, &CompileError{
			Field:   "keys." + label,
			Message: "key must be a single character",
			Pos:     pos,
		}
	}
	if phonology.IsWordBreak(runes[0]) {
		return 0, &CompileError{
			Field:   "keys." + label,
			Message: fmt.Sprintf("key %q is a word boundary and cannot be remapped", runes[0]),
			Pos:     pos,
		}
	}
	return unicode.ToLower(runes[0]), nil
}

// parseChain lowers one key's action list to intents.
func parseChain(label string, v cue.Value) ([]method.Intent, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var chain []method.Intent
	for iter.Next() {
		item := iter.Value()
		s, err := item.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		in, err := parseAction(s)
		if err != nil {
			return nil, &CompileError{
				Field:   "keys." + label,
				Message: err.Error(),
				Pos:     item.Pos(),
			}
		}
		chain = append(chain, in)
	}
	return chain, nil
}

// parseAction lowers one action string. The schema constrains the grammar;
// this parser is the authoritative mapping to intents.
func parseAction(s string) (method.Intent, error) {
	switch {
	case s == "tone-clear":
		return method.ClearTone(), nil

	case strings.HasPrefix(s, "tone-"):
		t, err := viet.ParseTone(strings.TrimPrefix(s, "tone-"))
		if err != nil || t == viet.ToneNone {
			return method.Intent{}, fmt.Errorf("unknown action %q", s)
		}
		return method.ApplyTone(t), nil

	case strings.HasPrefix(s, "mod-"):
		m, err := viet.ParseMod(strings.TrimPrefix(s, "mod-"))
		if err != nil || m == viet.ModNone || m == viet.ModStroke {
			return method.Intent{}, fmt.Errorf("unknown action %q", s)
		}
		return method.Modify(m), nil

	case s == "stroke-d":
		return method.Modify(viet.ModStroke), nil

	case strings.HasPrefix(s, "literal:"):
		runes := []rune(strings.TrimPrefix(s, "literal:"))
		if len(runes) != 1 {
			return method.Intent{}, fmt.Errorf("literal action needs exactly one character, got %q", s)
		}
		return method.Literal(runes[0]), nil
	}
	return method.Intent{}, fmt.Errorf("unknown action %q", s)
}

// CompileError is a keymap compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
