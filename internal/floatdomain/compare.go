package floatdomain

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

// FCmp implements the sixteen IEEE float comparison predicates. It
// returns -1 (bottom), 0 (definite false), 1 (definite true), or 2 (top).
//
// FCMP_UNO and FCMP_TRUE return 1 directly, without consulting either
// operand's range: this short-circuit is deliberate, not an oversight,
// and must be kept even though it means FCMP_UNO answers "true" for
// operands that can never actually be NaN.
func (v FloatInterval) FCmp(pred predicate.Float, bv domain.FloatValue) int {
	b := mustFloatInterval("fcmp", bv)
	checkSem("fcmp", v, b)
	if v.empty || b.empty {
		return -1
	}

	switch pred {
	case predicate.FCMP_FALSE:
		return 0
	case predicate.FCMP_TRUE, predicate.FCMP_UNO:
		return 1
	case predicate.FCMP_ORD:
		if v.mayBeNaN || b.mayBeNaN {
			return 2
		}
		return 1
	}

	if v.top || b.top {
		return 2
	}

	mayNaN := v.mayBeNaN || b.mayBeNaN
	numeric := numericTri(pred, v, b)

	if pred.Ordered() {
		// a NaN operand makes an ordered predicate false, never true; a
		// definite numeric false therefore still holds, but a definite
		// or unknown numeric true degrades to top.
		if mayNaN {
			if numeric == 0 {
				return 0
			}
			return 2
		}
		return fromTri(numeric)
	}

	// unordered group (UEQ/UGT/UGE/ULT/ULE/UNE): a NaN operand makes the
	// predicate true outright, so a definite numeric true still holds,
	// but a definite or unknown numeric false degrades to top.
	if mayNaN {
		if numeric == 1 {
			return 1
		}
		return 2
	}
	return fromTri(numeric)
}

// numericTri evaluates pred's underlying arithmetic relation (ignoring
// NaN entirely) against v and b's ranges: -1 unknown, 0 false, 1 true.
func numericTri(pred predicate.Float, v, b FloatInterval) int {
	eq, eqKnown := numericEq(v, b)
	lt, ltKnown := numericLess(v, b)
	gt, gtKnown := numericLess(b, v)

	switch pred {
	case predicate.FCMP_OEQ, predicate.FCMP_UEQ:
		return tri(eqKnown, eq)
	case predicate.FCMP_ONE, predicate.FCMP_UNE:
		return tri(eqKnown, !eq)
	case predicate.FCMP_OGT, predicate.FCMP_UGT:
		return tri(gtKnown, gt)
	case predicate.FCMP_OGE, predicate.FCMP_UGE:
		return tri(ltKnown, !lt)
	case predicate.FCMP_OLT, predicate.FCMP_ULT:
		return tri(ltKnown, lt)
	case predicate.FCMP_OLE, predicate.FCMP_ULE:
		return tri(gtKnown, !gt)
	default:
		return -1
	}
}

func tri(known, val bool) int {
	if !known {
		return -1
	}
	if val {
		return 1
	}
	return 0
}

func fromTri(t int) int {
	if t < 0 {
		return 2
	}
	return t
}

// numericEq reports a definite equal/unequal answer: equal only when
// both operands are the same singleton, unequal only when the ranges
// are disjoint. Overlapping non-singleton ranges give known=false since
// the actual runtime values could agree or differ.
func numericEq(v, b FloatInterval) (eq bool, known bool) {
	if isSinglePoint(v) && isSinglePoint(b) {
		cmp, nan := bignum.Cmp(v.lo, b.lo)
		if nan {
			return false, false
		}
		return cmp == 0, true
	}
	if rangesDisjoint(v, b) {
		return false, true
	}
	return false, false
}

// numericLess reports whether v is definitely less than b (v.hi < b.lo),
// or definitely not less than b (v.lo >= b.hi).
func numericLess(v, b FloatInterval) (lt bool, known bool) {
	hiLo, hiLoNaN := bignum.Cmp(v.hi, b.lo)
	if !hiLoNaN && hiLo < 0 {
		return true, true
	}
	loHi, loHiNaN := bignum.Cmp(v.lo, b.hi)
	if !loHiNaN && loHi >= 0 {
		return false, true
	}
	return false, false
}

func isSinglePoint(v FloatInterval) bool {
	cmp, nan := bignum.Cmp(v.lo, v.hi)
	return !nan && cmp == 0
}

func rangesDisjoint(v, b FloatInterval) bool {
	hiLo, nan1 := bignum.Cmp(v.hi, b.lo)
	loHi, nan2 := bignum.Cmp(b.hi, v.lo)
	if nan1 || nan2 {
		return false
	}
	return hiLo < 0 || loHi < 0
}
