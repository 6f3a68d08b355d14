package floatdomain

import (
	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// FPTrunc narrows to a smaller semantics (e.g. double to single),
// re-rounding each endpoint at the target mantissa width.
func (v FloatInterval) FPTrunc(toSem int) domain.FloatValue {
	return v.recast(absenv.FloatSemantics(toSem))
}

// FPExt widens to a larger semantics; every value the narrower type can
// hold is exactly representable in the wider one, so this is lossless.
func (v FloatInterval) FPExt(toSem int) domain.FloatValue {
	return v.recast(absenv.FloatSemantics(toSem))
}

func (v FloatInterval) recast(sem absenv.FloatSemantics) FloatInterval {
	if v.empty {
		return Bottom(sem)
	}
	if v.top {
		return Top(sem)
	}
	lo := bignum.Recast(sem, v.lo)
	hi := bignum.Recast(sem, v.hi)
	return FromRangeMayBeNaN(lo, hi, v.mayBeNaN)
}
