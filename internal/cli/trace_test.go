package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionIDPattern = regexp.MustCompile(`recorded session ([0-9a-f-]{36})`)

// recordSession runs trace record against db and returns the new session id.
func recordSession(t *testing.T, db, script string, extra ...string) string {
	t.Helper()
	args := append([]string{"record", "--db", db}, extra...)
	args = append(args, script)
	out, err := runCommand(t, NewTraceCommand, "text", args...)
	require.NoError(t, err)

	m := sessionIDPattern.FindStringSubmatch(out)
	require.Len(t, m, 2, "output should name the session id: %q", out)
	return m[1]
}

func TestTraceRecordAndReplay(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	id := recordSession(t, db, "vieetj nam ")

	out, err := runCommand(t, NewTraceCommand, "text", "replay", "--db", db, id)
	require.NoError(t, err)
	assert.Contains(t, out, "replayed cleanly")
	assert.Contains(t, out, "11 keys")
}

func TestTraceRecord_PrintsText(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	out, err := runCommand(t, NewTraceCommand, "text", "record", "--db", db, "toans ")
	require.NoError(t, err)
	assert.Contains(t, out, "toán ")
}

func TestTraceReplay_VNISession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	id := recordSession(t, db, "vie6t5 ", "--method", "vni")

	out, err := runCommand(t, NewTraceCommand, "text", "replay", "--db", db, id)
	require.NoError(t, err)
	assert.Contains(t, out, "replayed cleanly")
}

func TestTraceReplay_UnknownSession(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	recordSession(t, db, "a ")

	_, err := runCommand(t, NewTraceCommand, "text",
		"replay", "--db", db, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTraceList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	first := recordSession(t, db, "xin ")
	second := recordSession(t, db, "chaof ")

	out, err := runCommand(t, NewTraceCommand, "text", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "2 sessions")
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)
}

func TestTraceList_JSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	id := recordSession(t, db, "ddi ")

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", db})
	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var sessions []SessionSummary
	require.NoError(t, json.Unmarshal(data, &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].ID)
	assert.Equal(t, "telex", sessions[0].Method)
	assert.Equal(t, 4, sessions[0].Keys)
}
