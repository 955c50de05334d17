package viet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLetter_PlainKey(t *testing.T) {
	l := NewLetter('a')
	assert.Equal(t, 'a', l.Base)
	assert.Equal(t, ModNone, l.Mod)
	assert.Equal(t, ToneNone, l.Tone)
	assert.False(t, l.Upper)
	assert.Equal(t, "a", l.Raw)
}

func TestNewLetter_UppercasePreserved(t *testing.T) {
	l := NewLetter('A')
	assert.Equal(t, 'a', l.Base)
	assert.True(t, l.Upper)
	assert.Equal(t, "A", l.Raw)
	assert.Equal(t, 'A', l.Rune())
}

func TestNewLetter_ComposedLiteral(t *testing.T) {
	// A literal ư (from the telex w fallback or a quick key) behaves like a
	// horned u from then on.
	l := NewLetter('ư')
	assert.Equal(t, 'u', l.Base)
	assert.Equal(t, ModHorn, l.Mod)
	assert.Equal(t, 'ư', l.Rune())
	assert.Equal(t, 'ư', l.Host())
	assert.True(t, l.IsVowel())
}

func TestLetter_RuneRestoresCase(t *testing.T) {
	l := Letter{Base: 'o', Mod: ModHorn, Tone: ToneDot, Upper: true}
	assert.Equal(t, 'Ợ', l.Rune())
}

func TestLetter_HostDropsTone(t *testing.T) {
	l := Letter{Base: 'a', Mod: ModBreve, Tone: ToneAcute}
	assert.Equal(t, 'ắ', l.Rune())
	assert.Equal(t, 'ă', l.Host())
}

func TestRender(t *testing.T) {
	letters := []Letter{
		{Base: 'd', Mod: ModStroke, Raw: "dd"},
		{Base: 'u', Mod: ModHorn, Raw: "uw"},
		{Base: 'o', Mod: ModHorn, Tone: ToneDot, Raw: "ow"},
		{Base: 'c', Raw: "c"},
	}
	assert.Equal(t, "được", Render(letters))
}
