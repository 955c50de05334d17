package method

import "github.com/ThanhNguyxn/vietflux-ime/internal/viet"

// vniTable implements the VNI convention: digits compose, letters are
// always literal.
//
//	1 2 3 4 5   tones (sắc huyền hỏi ngã nặng)
//	6           circumflex
//	7           horn
//	8           breve
//	9           đ
//	0           clear tone
//
// Every digit resolves unconditionally; a digit with nothing to act on
// degrades to a literal in the engine, so "747" stays "747".
type vniTable struct{}

// Method implements Table.
func (vniTable) Method() Method { return VNI }

// Resolve implements Table.
func (vniTable) Resolve(key rune, _ Context) []Intent {
	switch key {
	case '1':
		return []Intent{ApplyTone(viet.ToneAcute)}
	case '2':
		return []Intent{ApplyTone(viet.ToneGrave)}
	case '3':
		return []Intent{ApplyTone(viet.ToneHook)}
	case '4':
		return []Intent{ApplyTone(viet.ToneTilde)}
	case '5':
		return []Intent{ApplyTone(viet.ToneDot)}
	case '6':
		return []Intent{Modify(viet.ModCircumflex)}
	case '7':
		return []Intent{Modify(viet.ModHorn)}
	case '8':
		return []Intent{Modify(viet.ModBreve)}
	case '9':
		return []Intent{Modify(viet.ModStroke)}
	case '0':
		return []Intent{ClearTone()}
	}
	return nil
}
