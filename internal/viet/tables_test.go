package viet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		base rune
		mod  Mod
		tone Tone
		want rune
	}{
		{"plain vowel", 'a', ModNone, ToneNone, 'a'},
		{"acute", 'a', ModNone, ToneAcute, 'á'},
		{"circumflex", 'a', ModCircumflex, ToneNone, 'â'},
		{"circumflex dot", 'a', ModCircumflex, ToneDot, 'ậ'},
		{"breve tilde", 'a', ModBreve, ToneTilde, 'ẵ'},
		{"horn o grave", 'o', ModHorn, ToneGrave, 'ờ'},
		{"horn u", 'u', ModHorn, ToneNone, 'ư'},
		{"horn u acute", 'u', ModHorn, ToneAcute, 'ứ'},
		{"e circumflex hook", 'e', ModCircumflex, ToneHook, 'ể'},
		{"y tilde", 'y', ModNone, ToneTilde, 'ỹ'},
		{"stroke", 'd', ModStroke, ToneNone, 'đ'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compose(tt.base, tt.mod, tt.tone)
			require.True(t, ok)
			assert.Equal(t, string(tt.want), string(got))
		})
	}
}

func TestCompose_InvalidCombinations(t *testing.T) {
	tests := []struct {
		name string
		base rune
		mod  Mod
		tone Tone
	}{
		{"breve on e", 'e', ModBreve, ToneNone},
		{"horn on a", 'a', ModHorn, ToneNone},
		{"circumflex on u", 'u', ModCircumflex, ToneNone},
		{"stroke on b", 'b', ModStroke, ToneNone},
		{"tone on d stroke", 'd', ModStroke, ToneAcute},
		{"tone on consonant", 'b', ModNone, ToneGrave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Compose(tt.base, tt.mod, tt.tone)
			assert.False(t, ok)
		})
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Decomposed
	}{
		{"circumflex", 'â', Decomposed{Base: 'a', Mod: ModCircumflex}},
		{"full triple", 'ậ', Decomposed{Base: 'a', Mod: ModCircumflex, Tone: ToneDot}},
		{"horn tone", 'ợ', Decomposed{Base: 'o', Mod: ModHorn, Tone: ToneDot}},
		{"plain tone", 'ỳ', Decomposed{Base: 'y', Tone: ToneGrave}},
		{"stroke", 'đ', Decomposed{Base: 'd', Mod: ModStroke}},
		{"uppercase folds", 'Ế', Decomposed{Base: 'e', Mod: ModCircumflex, Tone: ToneAcute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decompose(tt.r)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Decompose('a')
	assert.False(t, ok, "plain letters carry no diacritic")
	_, ok = Decompose('x')
	assert.False(t, ok)
}

func TestDecompose_RoundTrip(t *testing.T) {
	// Every entry the decompose table knows must compose back to itself.
	for r, d := range decomposeTable {
		got, ok := Compose(d.Base, d.Mod, d.Tone)
		require.True(t, ok, "compose %q", string(r))
		assert.Equal(t, string(r), string(got))
	}
	assert.Len(t, decomposeTable, 67, "67 lowercase composed forms")
}

func TestHasComposed(t *testing.T) {
	assert.True(t, HasComposed("neư"))
	assert.True(t, HasComposed("đi"))
	assert.True(t, HasComposed("VIỆT"))
	assert.False(t, HasComposed("new"))
	assert.False(t, HasComposed("as"))
	assert.False(t, HasComposed(""))
}
