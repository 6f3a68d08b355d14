package bignum

import (
	"math/big"

	"github.com/mewmew/float/float128"
	"github.com/mewmew/float/x87"

	"github.com/sentra-lang/canalgo/internal/absenv"
)

// canonicalizeExtended re-rounds f through a bit-accurate software
// encoding of the target's actual extended-precision representation;
// round() calls it as its last step. big.Float's configurable mantissa
// precision approximates x87-80 and quad precision well enough for
// interval arithmetic, but the canonical string form's toString/
// matchesString round trip should reflect the same rounding a real x87
// FPU or IEEE quad unit would produce, which is what mewmew/float's
// bit-exact extended formats give us.
func canonicalizeExtended(sem absenv.FloatSemantics, f *big.Float) *big.Float {
	if f.IsInf() || f.Sign() == 0 {
		return f
	}
	switch sem {
	case absenv.X87_80:
		ext := x87.NewFromBig(f)
		return ext.Big()
	case absenv.Quad:
		ext := float128.NewFromBig(f)
		return ext.Big()
	default:
		return f
	}
}
