package bitfield

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/obslog"
)

// Add/Sub/Mul/UDiv/SDiv/URem/SRem implement the bitfield domain's limited
// precision policy: collapse to top unless both operands are bitfield-
// constants (every bit definite), in which case convert to concrete
// integers and apply the bignum primitive.
func (v Bitfield) Add(bv domain.IntValue) domain.IntValue {
	return v.concretize("add", bv, func(a, b bignum.APInt) (bignum.APInt, bool) {
		r, overflow := bignum.AddUnsigned(a, b)
		return r, !overflow
	})
}

func (v Bitfield) Sub(bv domain.IntValue) domain.IntValue {
	return v.concretize("sub", bv, func(a, b bignum.APInt) (bignum.APInt, bool) {
		r, overflow := bignum.SubUnsigned(a, b)
		return r, !overflow
	})
}

func (v Bitfield) Mul(bv domain.IntValue) domain.IntValue {
	return v.concretize("mul", bv, func(a, b bignum.APInt) (bignum.APInt, bool) {
		r, overflow := bignum.MulUnsigned(a, b)
		return r, !overflow
	})
}

func (v Bitfield) UDiv(bv domain.IntValue) domain.IntValue {
	return v.concretize("udiv", bv, bignum.UDiv)
}

func (v Bitfield) SDiv(bv domain.IntValue) domain.IntValue {
	return v.concretize("sdiv", bv, func(a, b bignum.APInt) (bignum.APInt, bool) {
		r, overflow, ok := bignum.SDiv(a, b)
		return r, ok && !overflow
	})
}

func (v Bitfield) URem(bv domain.IntValue) domain.IntValue {
	return v.concretize("urem", bv, bignum.URem)
}

func (v Bitfield) SRem(bv domain.IntValue) domain.IntValue {
	return v.concretize("srem", bv, bignum.SRem)
}

// concretize is the shared "both constant or give up" path every
// arithmetic operator follows.
func (v Bitfield) concretize(op string, bv domain.IntValue, f func(a, b bignum.APInt) (bignum.APInt, bool)) domain.IntValue {
	b := mustBitfield(op, bv)
	checkWidth(op, v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	ac, aok := v.AsConstant()
	bc, bok := b.AsConstant()
	if !aok || !bok {
		obslog.Absorbed(op, "Bitfield", "operand not bitfield-constant")
		return Top(v.width)
	}
	result, ok := f(ac, bc)
	if !ok {
		obslog.Absorbed(op, "Bitfield", "concrete operation undefined or overflowed")
		return Top(v.width)
	}
	return FromConstant(result)
}
