package vietflux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent_String(t *testing.T) {
	cases := []struct {
		ev   KeyEvent
		want string
	}{
		{KeyEvent{Rune: 'a'}, "a"},
		{KeyEvent{Rune: 'ư'}, "ư"},
		{KeyEvent{Key: KeyBackspace}, "<bs>"},
		{KeyEvent{Key: KeyEscape}, "<esc>"},
		{KeyEvent{Rune: 'c', Ctrl: true}, "C-c"},
		{KeyEvent{Ctrl: true}, "C-"},
		{KeyEvent{}, "<none>"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ev.String())
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "update", ActionUpdate.String())
	assert.Equal(t, "commit", ActionCommit.String())
	assert.Equal(t, "invalid", Action(9).String())
}

func TestResult_Committed(t *testing.T) {
	assert.False(t, Result{}.Committed())
	assert.False(t, Result{Action: ActionUpdate}.Committed())
	assert.True(t, Result{Action: ActionCommit}.Committed())
}

func TestDiffText(t *testing.T) {
	cases := []struct {
		name     string
		old, new string
		bs       int
		out      string
	}{
		{"append", "toa", "toan", 0, "n"},
		{"suffix rewrite", "toan", "toán", 2, "án"},
		{"identical", "việt", "việt", 0, ""},
		{"shrink", "toán", "toan", 2, "an"},
		{"disjoint", "ươ", "uo", 2, "uo"},
		{"from empty", "", "a", 0, "a"},
		{"to empty", "ab", "", 2, ""},
		{"both empty", "", "", 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bs, out := diffText([]rune(tc.old), []rune(tc.new))
			assert.Equal(t, tc.bs, bs)
			assert.Equal(t, tc.out, out)
		})
	}
}
