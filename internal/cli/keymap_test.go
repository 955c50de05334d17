package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeymapVet_Valid(t *testing.T) {
	out, err := runCommand(t, NewKeymapCommand, "text",
		"vet", filepath.Join("testdata", "telex-digits.cue"))
	require.NoError(t, err)
	assert.Contains(t, out, "telex-digits")
	assert.Contains(t, out, "6 keys remapped")
}

func TestKeymapVet_Invalid(t *testing.T) {
	_, err := runCommand(t, NewKeymapCommand, "text",
		"vet", filepath.Join("testdata", "keymap-bad.cue"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestKeymapVet_MissingFile(t *testing.T) {
	_, err := runCommand(t, NewKeymapCommand, "text",
		"vet", filepath.Join("testdata", "no-such-keymap.cue"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestKeymapVet_JSON(t *testing.T) {
	out, err := runCommand(t, NewKeymapCommand, "json",
		"vet", filepath.Join("testdata", "telex-digits.cue"))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var report KeymapReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "telex-digits", report.Name)
	assert.Equal(t, "telex", report.Base)
	assert.Len(t, report.Keys, 6)
}
