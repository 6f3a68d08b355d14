package intset

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func width1False(threshold int) Set  { return FromConstant(bignum.Zero(1), threshold) }
func width1True(threshold int) Set   { return FromConstant(bignum.FromUint64(1, 1), threshold) }
func width1Top(threshold int) Set    { return Top(1, threshold) }
func width1Bottom(threshold int) Set { return Bottom(1, threshold) }

// ICmp returns top if either operand is top. Otherwise it computes
// min/max under the predicate's signedness and decides as for Interval
// (constant-vs-constant -> definite; intersection-non-empty -> top;
// disjoint -> definite). EQ is special-cased: only single-element sets
// get a definite equality answer; multi-element equal sets return top.
func (v Set) ICmp(pred predicate.Int, bv domain.IntValue) domain.IntValue {
	b := mustSet("icmp", bv)
	checkWidth("icmp", v, b)

	if v.IsBottom() || b.IsBottom() {
		return width1Bottom(v.threshold)
	}
	if v.top || b.top {
		return width1Top(v.threshold)
	}

	switch pred {
	case predicate.EQ:
		return icmpEq(v, b, true)
	case predicate.NE:
		return icmpEq(v, b, false)
	default:
		return icmpOrdered(v, b, pred)
	}
}

// icmpEq gives single-element sets a definite equal/disjoint answer;
// multi-element sets only ever produce a definite "not equal" via
// disjointness, never a definite "equal", since an over-approximating set
// equal to another over-approximating set doesn't imply the underlying
// concrete values are necessarily equal.
func icmpEq(a, b Set, wantEqual bool) Set {
	if a.IsSingleValue() && b.IsSingleValue() {
		equal := a.values[0].Eq(b.values[0])
		return boolResult(a.threshold, equal == wantEqual)
	}
	if !setsIntersect(a, b) {
		return boolResult(a.threshold, !wantEqual)
	}
	return width1Top(a.threshold)
}

func setsIntersect(a, b Set) bool {
	for _, x := range a.values {
		if containsSorted(b.values, x) {
			return true
		}
	}
	return false
}

func boolResult(threshold int, r bool) Set {
	if r {
		return width1True(threshold)
	}
	return width1False(threshold)
}

// icmpOrdered mirrors the interval algorithm over the set's min/max under
// the predicate's signedness.
func icmpOrdered(a, b Set, pred predicate.Int) Set {
	signed := pred.Signed()
	aLo, aHi := extent(a, signed)
	bLo, bHi := extent(b, signed)

	aBeforeB := aHi.Cmp(bLo) < 0
	bBeforeA := bHi.Cmp(aLo) < 0
	disjoint := aBeforeB || bBeforeA
	equalConstants := a.IsSingleValue() && b.IsSingleValue() && aLo.Cmp(bLo) == 0

	switch pred {
	case predicate.ULT, predicate.SLT:
		if equalConstants {
			return boolResult(a.threshold, false)
		}
		if disjoint {
			return boolResult(a.threshold, aBeforeB)
		}
	case predicate.UGT, predicate.SGT:
		if equalConstants {
			return boolResult(a.threshold, false)
		}
		if disjoint {
			return boolResult(a.threshold, bBeforeA)
		}
	case predicate.ULE, predicate.SLE:
		if equalConstants {
			return boolResult(a.threshold, true)
		}
		if disjoint {
			return boolResult(a.threshold, !bBeforeA)
		}
	case predicate.UGE, predicate.SGE:
		if equalConstants {
			return boolResult(a.threshold, true)
		}
		if disjoint {
			return boolResult(a.threshold, !aBeforeB)
		}
	}
	return width1Top(a.threshold)
}

func extent(s Set, signed bool) (lo, hi *big.Int) {
	pick := func(x bignum.APInt) *big.Int {
		if signed {
			return x.Signed()
		}
		return x.Unsigned()
	}
	lo, hi = pick(s.values[0]), pick(s.values[0])
	for _, x := range s.values[1:] {
		v := pick(x)
		if v.Cmp(lo) < 0 {
			lo = v
		}
		if v.Cmp(hi) > 0 {
			hi = v
		}
	}
	return lo, hi
}
