package shortcut

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDoc is the YAML document shape for user shortcut tables:
//
//	entries:
//	  - trigger: ko
//	    expansion: không
//	  - trigger: btw
//	    expansion: by the way
//	    when: immediate
type fileDoc struct {
	Entries []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Trigger   string `yaml:"trigger"`
	Expansion string `yaml:"expansion"`
	When      string `yaml:"when,omitempty"`
	Disabled  bool   `yaml:"disabled,omitempty"`
}

// Parse builds a table from YAML. Unknown fields are rejected so typos
// (expanson:) fail loudly instead of silently dropping entries.
func Parse(data []byte) (*Table, error) {
	var doc fileDoc
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse shortcut YAML: %w", err)
	}

	t := New()
	for i, e := range doc.Entries {
		when, err := ParseCondition(e.When)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Trigger, err)
		}
		entry := Entry{
			Trigger:   e.Trigger,
			Expansion: e.Expansion,
			When:      when,
			Disabled:  e.Disabled,
		}
		if err := t.Add(entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return t, nil
}

// Load reads a shortcut table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shortcut file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
