package bitfield

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/domain"
)

// Trunc takes the low toWidth bits.
func (v Bitfield) Trunc(toWidth int) domain.IntValue {
	return normalizeMask(toWidth, Bitfield{width: toWidth, zeros: v.zeros, ones: v.ones})
}

// Zext left-pads with definite-0.
func (v Bitfield) Zext(toWidth int) domain.IntValue {
	zeros := new(big.Int).Set(v.zeros)
	ones := new(big.Int).Set(v.ones)
	for i := v.width; i < toWidth; i++ {
		zeros.SetBit(zeros, i, 1)
	}
	return Bitfield{width: toWidth, zeros: zeros, ones: ones}
}

// Sext left-pads with the sign-bit's triple (definite-0, definite-1, or
// top, matching whatever the sign bit itself denotes).
func (v Bitfield) Sext(toWidth int) domain.IntValue {
	zeros := new(big.Int).Set(v.zeros)
	ones := new(big.Int).Set(v.ones)
	signZero := v.zeros.Bit(v.width - 1)
	signOne := v.ones.Bit(v.width - 1)
	for i := v.width; i < toWidth; i++ {
		zeros.SetBit(zeros, i, signZero)
		ones.SetBit(ones, i, signOne)
	}
	return Bitfield{width: toWidth, zeros: zeros, ones: ones}
}
