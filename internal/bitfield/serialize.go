package bitfield

import (
	"fmt"
	"strings"
)

// String renders the canonical bitfield grammar:
//   "integerBitfield " bits
// where each bit is one of 0|1|T|_ (T for top, _ for bottom), written
// most-significant bit first.
func (v Bitfield) String() string {
	var sb strings.Builder
	sb.WriteString("integerBitfield ")
	for i := v.width - 1; i >= 0; i-- {
		sb.WriteByte(bitChar(v.zeros.Bit(i), v.ones.Bit(i)))
	}
	return sb.String()
}

func bitChar(zero, one uint) byte {
	switch {
	case zero == 1 && one == 0:
		return '0'
	case zero == 0 && one == 1:
		return '1'
	case zero == 1 && one == 1:
		return 'T'
	default:
		return '_'
	}
}

func (v Bitfield) MatchesString(text string) (bool, string) {
	want := v.String()
	if text == want {
		return true, ""
	}
	return false, fmt.Sprintf("expected %q, got %q", want, text)
}

// ParseBitfield parses String()'s output back into a Bitfield.
func ParseBitfield(text string) (Bitfield, error) {
	const prefix = "integerBitfield "
	if !strings.HasPrefix(text, prefix) {
		return Bitfield{}, fmt.Errorf("missing %q prefix in %q", prefix, text)
	}
	bits := text[len(prefix):]
	width := len(bits)
	v := Bottom(width)
	for i, ch := range bits {
		pos := width - 1 - i
		switch ch {
		case '0':
			v.zeros.SetBit(v.zeros, pos, 1)
		case '1':
			v.ones.SetBit(v.ones, pos, 1)
		case 'T':
			v.zeros.SetBit(v.zeros, pos, 1)
			v.ones.SetBit(v.ones, pos, 1)
		case '_':
			// leave both bits 0, denoting bottom at this position
		default:
			return Bitfield{}, fmt.Errorf("unrecognized bit char %q in %q", ch, text)
		}
	}
	return v, nil
}
