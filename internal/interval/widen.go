package interval

import "github.com/sentra-lang/canalgo/internal/bignum"

// Widen jumps the interval's non-stable endpoint to its extreme
// representable value, applied independently per side: whichever
// endpoint moved outward between the previous iteration's value (v) and
// this iteration's join candidate (next) is replaced by that side's
// extreme, since an endpoint that moved once may keep moving on every
// future iteration and must not be trusted to stabilize on its own.
func Widen(v, next Interval) Interval {
	if v.width != next.width {
		return next
	}
	return Interval{
		width:    v.width,
		signed:   widenSide(v.width, true, v.signed, next.signed),
		unsigned: widenSide(v.width, false, v.unsigned, next.unsigned),
	}
}

func widenSide(width int, signed bool, prev, next sidedRange) sidedRange {
	if prev.isBottom() {
		return next
	}
	if next.isBottom() {
		return prev
	}
	if prev.isTop() || next.isTop() {
		return topSide(width, signed)
	}
	lo := prev.lo
	if cmp(signed, next.lo, prev.lo) < 0 {
		lo = extremeLo(width, signed)
	}
	hi := prev.hi
	if cmp(signed, next.hi, prev.hi) > 0 {
		hi = extremeHi(width, signed)
	}
	return rangeSide(lo, hi)
}

func extremeLo(width int, signed bool) bignum.APInt {
	if signed {
		return bignum.MinSigned(width)
	}
	return bignum.MinUnsigned(width)
}

func extremeHi(width int, signed bool) bignum.APInt {
	if signed {
		return bignum.MaxSigned(width)
	}
	return bignum.MaxUnsigned(width)
}
