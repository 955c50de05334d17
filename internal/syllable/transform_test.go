package syllable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

func TestTonePosition(t *testing.T) {
	tests := []struct {
		word  string
		style Style
		want  int
	}{
		{"a", StyleModern, 0},
		{"ba", StyleModern, 1},
		{"toan", StyleModern, 2},      // closed syllable marks the second vowel
		{"đươc", StyleModern, 2},      // ươ carries on ơ
		{"chưa", StyleModern, 2},      // sole modified vowel wins
		{"tiên", StyleModern, 2},      // closed, second
		{"mai", StyleModern, 1},       // ai marks first
		{"mua", StyleModern, 1},       // ua marks first
		{"meo", StyleModern, 1},       // eo marks first
		{"cưu", StyleModern, 1},       // ưu marks first
		{"hoa", StyleModern, 2},       // modern: hoà
		{"hoa", StyleTraditional, 1},  // traditional: hòa
		{"hoe", StyleTraditional, 1},
		{"tuy", StyleModern, 2},
		{"tuy", StyleTraditional, 1},
		{"tuê", StyleModern, 2},      // uê stays second under both styles
		{"tuê", StyleTraditional, 2},
		{"hoan", StyleTraditional, 2}, // a final consonant overrides style
		{"quy", StyleModern, 2},       // qu absorbs the u; the y hosts
		{"gia", StyleModern, 2},       // gi absorbs the i
		{"nguyên", StyleModern, 4},    // uyê marks its modified vowel
		{"khuyu", StyleModern, 3},     // three plain vowels mark the middle
		{"ngoai", StyleModern, 3},
		{"rươu", StyleModern, 2},      // two modified vowels fall back to middle
	}
	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.style.String(), func(t *testing.T) {
			got, ok := fromString(tt.word).TonePosition(tt.style)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := fromString("str").TonePosition(StyleModern)
	assert.False(t, ok, "no nucleus, no position")
}

func TestApplyTone(t *testing.T) {
	s := fromString("ba")
	assert.Equal(t, Applied, s.ApplyTone(viet.ToneAcute, StyleModern))
	assert.Equal(t, "bá", s.Render())

	// A different tone replaces the old one.
	assert.Equal(t, Applied, s.ApplyTone(viet.ToneGrave, StyleModern))
	assert.Equal(t, "bà", s.Render())

	// Repeating the tone clears it.
	assert.Equal(t, Undone, s.ApplyTone(viet.ToneGrave, StyleModern))
	assert.Equal(t, "ba", s.Render())

	assert.Equal(t, NoTarget, fromString("str").ApplyTone(viet.ToneDot, StyleModern))
}

func TestApplyTone_MovesNothingOnReplace(t *testing.T) {
	// One tone per syllable: replacing clears the previous carrier.
	s := fromString("hoa")
	require.Equal(t, Applied, s.ApplyTone(viet.ToneAcute, StyleTraditional))
	assert.Equal(t, "hóa", s.Render())
	require.Equal(t, Applied, s.ApplyTone(viet.ToneDot, StyleTraditional))
	assert.Equal(t, "họa", s.Render())

	toned := 0
	for _, l := range s.Letters() {
		if l.Tone != viet.ToneNone {
			toned++
		}
	}
	assert.Equal(t, 1, toned)
}

func TestClearTone(t *testing.T) {
	s := fromString("ba")
	require.Equal(t, Applied, s.ApplyTone(viet.ToneTilde, StyleModern))
	assert.Equal(t, Applied, s.ClearTone())
	assert.Equal(t, "ba", s.Render())
	assert.Equal(t, NoTarget, s.ClearTone(), "nothing left to clear")
}

func TestApplyModifier_Circumflex(t *testing.T) {
	s := fromString("a")
	res := s.ApplyModifier(viet.ModCircumflex, 'a', 'a')
	assert.Equal(t, Applied, res)
	assert.Equal(t, "â", s.Render())
	assert.Equal(t, "aa", s.Letters()[0].Raw)

	// Double press dissolves the letter back into its keystrokes.
	res = s.ApplyModifier(viet.ModCircumflex, 'a', 'a')
	assert.Equal(t, Undone, res)
	assert.Equal(t, "aa", s.Render())
	assert.Equal(t, viet.ModNone, s.Letters()[0].Mod)
	assert.Equal(t, viet.ModNone, s.Letters()[1].Mod)
}

func TestApplyModifier_TargetRestriction(t *testing.T) {
	// The e doubling must not touch an a.
	s := fromString("ba")
	res := s.ApplyModifier(viet.ModCircumflex, 'e', 'e')
	assert.Equal(t, NoTarget, res)
	assert.Equal(t, "ba", s.Render())
}

func TestApplyModifier_Stroke(t *testing.T) {
	s := fromString("d")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModStroke, 0, 'd'))
	assert.Equal(t, "đ", s.Render())

	assert.Equal(t, Undone, s.ApplyModifier(viet.ModStroke, 0, 'd'))
	assert.Equal(t, "dd", s.Render())
}

func TestApplyModifier_StrokePrefersFirstPlainD(t *testing.T) {
	s := fromString("đo")
	s.Letters()[0].Raw = "dd"
	s.Append(viet.NewLetter('d'))
	s.PushRaw('d')

	assert.Equal(t, Applied, s.ApplyModifier(viet.ModStroke, 0, 'd'))
	assert.Equal(t, "đođ", s.Render())
}

func TestApplyModifier_HornSingle(t *testing.T) {
	s := fromString("ho")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModHorn, 0, 'w'))
	assert.Equal(t, "hơ", s.Render())

	s = fromString("tu")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModHorn, 0, 'w'))
	assert.Equal(t, "tư", s.Render())

	assert.Equal(t, NoTarget, fromString("ha").ApplyModifier(viet.ModHorn, 0, 'w'))
}

func TestApplyModifier_HornCompound(t *testing.T) {
	s := fromString("muon")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModHorn, 0, 'w'))
	assert.Equal(t, "mươn", s.Render())
	assert.Equal(t, "ow", s.Letters()[2].Raw, "trigger lands on the second of the pair")
	assert.Equal(t, "u", s.Letters()[1].Raw)

	// A half-horned pair completes.
	s = fromString("đưo")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModHorn, 0, 'w'))
	assert.Equal(t, "đươ", s.Render())
}

func TestApplyModifier_HornDoubleU(t *testing.T) {
	s := fromString("cuu")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModHorn, 0, 'w'))
	assert.Equal(t, "cưu", s.Render())
}

func TestApplyModifier_UndoExpandsRawKeystrokes(t *testing.T) {
	// A standalone ư typed as w dissolves back into w, not u.
	s := New()
	l := viet.NewLetter('ư')
	l.Raw = "w"
	s.Append(l)
	s.PushRaw('w')

	assert.Equal(t, Undone, s.ApplyModifier(viet.ModHorn, 0, 'w'))
	assert.Equal(t, "w", s.Render())
}

func TestApplyModifier_UndoPreservesCase(t *testing.T) {
	s := New()
	s.Append(viet.NewLetter('D'))
	s.PushRaw('D')
	require.Equal(t, Applied, s.ApplyModifier(viet.ModStroke, 0, 'D'))
	assert.Equal(t, "Đ", s.Render())

	assert.Equal(t, Undone, s.ApplyModifier(viet.ModStroke, 0, 'D'))
	assert.Equal(t, "DD", s.Render())
}

func TestApplyModifier_Breve(t *testing.T) {
	s := fromString("tra")
	assert.Equal(t, Applied, s.ApplyModifier(viet.ModBreve, 0, 'w'))
	assert.Equal(t, "tră", s.Render())

	assert.Equal(t, Undone, s.ApplyModifier(viet.ModBreve, 0, 'w'))
	assert.Equal(t, "traw", s.Render())
}

func TestApplyModifier_KeepsTone(t *testing.T) {
	s := fromString("a")
	require.Equal(t, Applied, s.ApplyTone(viet.ToneAcute, StyleModern))
	require.Equal(t, Applied, s.ApplyModifier(viet.ModCircumflex, 'a', 'a'))
	assert.Equal(t, "ấ", s.Render())
}
