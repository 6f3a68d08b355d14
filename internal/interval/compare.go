package interval

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func width1False() Interval  { return FromConstant(bignum.Zero(1)) }
func width1True() Interval   { return FromConstant(bignum.FromUint64(1, 1)) }
func width1Top() Interval    { return Top(1) }
func width1Bottom() Interval { return Bottom(1) }

// ICmp dispatches on predicate, checking the side the predicate cares
// about (signed for S-predicates, unsigned for U-predicates, both for
// EQ/NE). Interval is a plain value with no object identity in this
// design, so "the same interval value compared with itself" is just the
// a == b case of the general algorithm below, which already answers it
// soundly (if more conservatively for non-singleton ranges, where a
// same-object short-circuit would be tighter).
func (v Interval) ICmp(pred predicate.Int, bv domain.IntValue) domain.IntValue {
	b := mustInterval("icmp", bv)
	checkWidth("icmp", v, b)

	if v.IsBottom() || b.IsBottom() {
		return width1Bottom()
	}

	switch pred {
	case predicate.EQ:
		return icmpEq(v, b, true)
	case predicate.NE:
		return icmpEq(v, b, false)
	default:
		signed := pred.Signed()
		a, o := v.signed, b.signed
		if !signed {
			a, o = v.unsigned, b.unsigned
		}
		return icmpOrdered(v.width, signed, pred, a, o)
	}
}

// icmpEq handles EQ/NE: both sides must agree to return a definite
// answer; any side alone giving a definite "different" is enough for NE
// to be true / EQ to be false.
func icmpEq(a, b Interval, wantEqual bool) Interval {
	sEq, sKnown := sideDefiniteEqual(a.signed, b.signed)
	uEq, uKnown := sideDefiniteEqual(a.unsigned, b.unsigned)

	if sKnown && !sEq {
		return boolResult(!wantEqual)
	}
	if uKnown && !uEq {
		return boolResult(!wantEqual)
	}
	if sKnown && uKnown && sEq && uEq {
		return boolResult(wantEqual)
	}
	return width1Top()
}

func sideDefiniteEqual(a, b sidedRange) (equal bool, known bool) {
	if a.isTop() || b.isTop() {
		return false, false
	}
	if a.isSingleValue() && b.isSingleValue() {
		return a.lo.Eq(b.lo), true
	}
	return false, false
}

func boolResult(b bool) Interval {
	if b {
		return width1True()
	}
	return width1False()
}

// icmpOrdered handles the eight ordered predicates (EQ/NE excluded, handled
// above) against a single side: definite answer for constant-vs-constant
// or provably-disjoint ranges, top if they intersect. LE/GE additionally
// resolve definitely when both sides are the same constant, since
// equality alone settles "<=" / ">=" even though neither side is
// strictly before the other.
func icmpOrdered(width int, signed bool, pred predicate.Int, a, b sidedRange) Interval {
	if a.isTop() || b.isTop() {
		return width1Top()
	}
	lt := func(x, y sidedRange) (bool, bool) {
		// x strictly before y: x.hi < y.lo
		if cmp(signed, x.hi, y.lo) < 0 {
			return true, true
		}
		if !intersectsSide(signed, x, y) {
			return false, true // disjoint, but x is after y
		}
		return false, false
	}

	aBeforeB, aBeforeBKnown := lt(a, b)
	bBeforeA, bBeforeAKnown := lt(b, a)
	equalConstants := a.isSingleValue() && b.isSingleValue() && a.lo.Eq(b.lo)

	switch pred {
	case predicate.ULT, predicate.SLT:
		if equalConstants {
			return width1False()
		}
		if aBeforeBKnown {
			return boolResult(aBeforeB)
		}
	case predicate.UGT, predicate.SGT:
		if equalConstants {
			return width1False()
		}
		if bBeforeAKnown {
			return boolResult(bBeforeA)
		}
	case predicate.ULE, predicate.SLE:
		if equalConstants {
			return width1True()
		}
		if bBeforeAKnown {
			return boolResult(!bBeforeA)
		}
	case predicate.UGE, predicate.SGE:
		if equalConstants {
			return width1True()
		}
		if aBeforeBKnown {
			return boolResult(!aBeforeB)
		}
	}
	return width1Top()
}
