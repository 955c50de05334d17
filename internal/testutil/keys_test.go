package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
)

func TestParseScript(t *testing.T) {
	events, err := ParseScript("ab c")
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, vietflux.KeyEvent{Rune: 'a'}, events[0])
	assert.Equal(t, vietflux.KeyEvent{Rune: ' '}, events[2])
}

func TestParseScript_Escapes(t *testing.T) {
	events, err := ParseScript(`a\b\e\\`)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, vietflux.KeyEvent{Rune: 'a'}, events[0])
	assert.Equal(t, vietflux.KeyEvent{Key: vietflux.KeyBackspace}, events[1])
	assert.Equal(t, vietflux.KeyEvent{Key: vietflux.KeyEscape}, events[2])
	assert.Equal(t, vietflux.KeyEvent{Rune: '\\'}, events[3])
}

func TestParseScript_Errors(t *testing.T) {
	_, err := ParseScript(`abc\`)
	assert.ErrorContains(t, err, "mid-escape")

	_, err = ParseScript(`a\q`)
	assert.ErrorContains(t, err, `unknown escape \q`)
}

func TestParseScript_Empty(t *testing.T) {
	events, err := ParseScript("")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestScreen(t *testing.T) {
	s := &Screen{}
	s.Apply(vietflux.Result{Output: "toa"})
	s.Apply(vietflux.Result{Output: "n"})
	s.Apply(vietflux.Result{Backspace: 2, Output: "án"})
	assert.Equal(t, "toán", s.String())

	s.Reset()
	assert.Equal(t, "", s.String())
}

func TestType(t *testing.T) {
	e := vietflux.New()
	out, err := Type(e, "vieetj ")
	require.NoError(t, err)
	assert.Equal(t, "việt ", out)
}

func TestType_BackspaceScript(t *testing.T) {
	e := vietflux.New()
	out, err := Type(e, `toans\b`)
	require.NoError(t, err)
	assert.Equal(t, "toan", out)
}
