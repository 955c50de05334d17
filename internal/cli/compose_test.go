package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes a freshly built subcommand with args and returns its
// combined stdout.
func runCommand(t *testing.T, build func(*RootOptions) *cobra.Command, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := build(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCompose_Telex(t *testing.T) {
	out, err := runCommand(t, NewComposeCommand, "text", "dduwowcj ")
	require.NoError(t, err)
	assert.Contains(t, out, "được ")
}

func TestCompose_VNI(t *testing.T) {
	out, err := runCommand(t, NewComposeCommand, "text", "--method", "vni", "vie6t5 nam ")
	require.NoError(t, err)
	assert.Contains(t, out, "việt nam ")
}

func TestCompose_FlushesUncommittedWord(t *testing.T) {
	out, err := runCommand(t, NewComposeCommand, "text", "toans")
	require.NoError(t, err)
	assert.Contains(t, out, "toán")
}

func TestCompose_DefaultShortcuts(t *testing.T) {
	out, err := runCommand(t, NewComposeCommand, "text", "--shortcuts", "default", "ko ")
	require.NoError(t, err)
	assert.Contains(t, out, "không ")
}

func TestCompose_ShortcutFile(t *testing.T) {
	path := filepath.Join("testdata", "shortcuts.yaml")
	out, err := runCommand(t, NewComposeCommand, "text", "--shortcuts", path, "ko ")
	require.NoError(t, err)
	assert.Contains(t, out, "không ")
}

func TestCompose_Keymap(t *testing.T) {
	path := filepath.Join("testdata", "telex-digits.cue")
	out, err := runCommand(t, NewComposeCommand, "text", "--keymap", path, "toan1 ")
	require.NoError(t, err)
	assert.Contains(t, out, "toán ")
}

func TestCompose_TraditionalStyle(t *testing.T) {
	out, err := runCommand(t, NewComposeCommand, "text", "--style", "traditional", "hoaf ")
	require.NoError(t, err)
	assert.Contains(t, out, "hòa ")
}

func TestCompose_JSON(t *testing.T) {
	out, err := runCommand(t, NewComposeCommand, "json", "--trace", "vieetj ")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ComposeResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "việt ", result.Text)
	assert.Len(t, result.Trace, 7)
}

func TestCompose_BadScript(t *testing.T) {
	_, err := runCommand(t, NewComposeCommand, "text", `bad\q`)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCompose_BadMethod(t *testing.T) {
	_, err := runCommand(t, NewComposeCommand, "text", "--method", "wubi", "a ")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
