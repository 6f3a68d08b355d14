package floatdomain

import "github.com/sentra-lang/canalgo/internal/bignum"

// Widen jumps whichever endpoint moved outward between the previous
// iteration (v) and this iteration's join candidate (next) straight to
// +/-infinity, the widening strategy that forces loop-carried float
// ranges to stabilize.
func Widen(v, next FloatInterval) FloatInterval {
	if v.empty {
		return next
	}
	if next.empty {
		return v
	}
	if v.top || next.top {
		return Top(v.sem)
	}
	lo := v.lo
	if cmp, nan := bignum.Cmp(next.lo, v.lo); nan || cmp < 0 {
		lo = bignum.NegInf(v.sem)
	}
	hi := v.hi
	if cmp, nan := bignum.Cmp(next.hi, v.hi); nan || cmp > 0 {
		hi = bignum.PosInf(v.sem)
	}
	return FromRangeMayBeNaN(lo, hi, v.mayBeNaN || next.mayBeNaN)
}
