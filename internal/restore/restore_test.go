package restore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
	"github.com/ThanhNguyxn/vietflux-ime/internal/viet"
)

// word builds a syllable whose letters render as shown and whose raw token
// is the keys as typed.
func word(shown, raw string) *syllable.Syllable {
	w := syllable.New()
	for _, r := range shown {
		w.Append(viet.NewLetter(r))
	}
	for _, r := range raw {
		w.PushRaw(r)
	}
	return w
}

func TestFinalize_KeepsAdmissibleWords(t *testing.T) {
	text, kind := Finalize(word("toán", "toans"), nil)
	assert.Equal(t, "toán", text)
	assert.Equal(t, Kept, kind)

	text, kind = Finalize(word("hello", "hello"), nil)
	assert.Equal(t, "hello", text)
	assert.Equal(t, Kept, kind)
}

func TestFinalize_RestoresMangledEnglish(t *testing.T) {
	// Typing "new" in Telex turns w into ư; the committed word goes back
	// to the raw keystrokes.
	text, kind := Finalize(word("neư", "new"), nil)
	assert.Equal(t, "new", text)
	assert.Equal(t, Restored, kind)

	// Case comes back exactly as typed.
	text, kind = Finalize(word("Neư", "New"), nil)
	assert.Equal(t, "New", text)
	assert.Equal(t, Restored, kind)
}

func TestFinalize_NeverRewritesPureASCII(t *testing.T) {
	// "aa" fails the vowel check but no transform ever fired, so it
	// commits as typed.
	text, kind := Finalize(word("aa", "aaa"), nil)
	assert.Equal(t, "aa", text)
	assert.Equal(t, Kept, kind)
}

func TestFinalize_ShortcutExpansion(t *testing.T) {
	table := shortcut.Defaults()

	text, kind := Finalize(word("ko", "ko"), table)
	assert.Equal(t, "không", text)
	assert.Equal(t, Expanded, kind)

	text, kind = Finalize(word("Ko", "Ko"), table)
	assert.Equal(t, "Không", text)
	assert.Equal(t, Expanded, kind)

	text, kind = Finalize(word("KO", "KO"), table)
	assert.Equal(t, "KHÔNG", text)
	assert.Equal(t, Expanded, kind)
}

func TestFinalize_ShortcutBeatsRestoration(t *testing.T) {
	// "dc" is not a syllable, but the shortcut claims it before the
	// restoration pass looks at it.
	table := shortcut.Defaults()
	text, kind := Finalize(word("dc", "dc"), table)
	assert.Equal(t, "được", text)
	assert.Equal(t, Expanded, kind)
}

func TestFinalize_Empty(t *testing.T) {
	text, kind := Finalize(syllable.New(), shortcut.Defaults())
	assert.Equal(t, "", text)
	assert.Equal(t, Kept, kind)
}

func TestFinalize_Idempotent(t *testing.T) {
	table := shortcut.Defaults()
	for _, w := range []*syllable.Syllable{
		word("neư", "new"),
		word("ko", "ko"),
		word("toán", "toans"),
		word("aa", "aaa"),
	} {
		first, _ := Finalize(w, table)
		again, kind := Finalize(word(first, first), table)
		assert.Equal(t, first, again, "Finalize must be a fixed point")
		assert.Equal(t, Kept, kind)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "kept", Kept.String())
	assert.Equal(t, "restored", Restored.String())
	assert.Equal(t, "expanded", Expanded.String())
}
