package bitfield

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func width1False() Bitfield  { return FromConstant(bignum.Zero(1)) }
func width1True() Bitfield   { return FromConstant(bignum.FromUint64(1, 1)) }
func width1Top() Bitfield    { return Top(1) }
func width1Bottom() Bitfield { return Bottom(1) }

// ICmp compares: EQ/NE compare definite-bit patterns directly; ordering
// predicates extract a signed/unsigned bounding box (via Range()) and
// fall back to the interval algorithm.
func (v Bitfield) ICmp(pred predicate.Int, bv domain.IntValue) domain.IntValue {
	b := mustBitfield("icmp", bv)
	checkWidth("icmp", v, b)

	if v.IsBottom() || b.IsBottom() {
		return width1Bottom()
	}
	if v.IsTop() || b.IsTop() {
		return width1Top()
	}

	switch pred {
	case predicate.EQ:
		return icmpEq(v, b, true)
	case predicate.NE:
		return icmpEq(v, b, false)
	default:
		return icmpOrderedViaRange(pred, v, b)
	}
}

// icmpEq compares the definite positions of a and b. Any position where
// one is definitely 0 and the other definitely 1 forces definite
// disagreement; all positions agreeing (and all definite) forces definite
// equality; otherwise top.
func icmpEq(a, b Bitfield, wantEqual bool) Bitfield {
	aDefZero := new(big.Int).AndNot(a.zeros, a.ones)
	aDefOne := new(big.Int).AndNot(a.ones, a.zeros)
	bDefZero := new(big.Int).AndNot(b.zeros, b.ones)
	bDefOne := new(big.Int).AndNot(b.ones, b.zeros)

	conflict := new(big.Int).Or(
		new(big.Int).And(aDefZero, bDefOne),
		new(big.Int).And(aDefOne, bDefZero),
	)
	if conflict.Sign() != 0 {
		return boolResult(!wantEqual)
	}

	allDefinite := new(big.Int).And(
		new(big.Int).Or(aDefZero, aDefOne),
		new(big.Int).Or(bDefZero, bDefOne),
	)
	if popcount(allDefinite) == a.width {
		agree := new(big.Int).Or(
			new(big.Int).And(aDefZero, bDefZero),
			new(big.Int).And(aDefOne, bDefOne),
		)
		if popcount(agree) == a.width {
			return boolResult(wantEqual)
		}
	}
	return width1Top()
}

func popcount(v *big.Int) int {
	count := 0
	for _, w := range v.Bits() {
		for w != 0 {
			count += int(w & 1)
			w >>= 1
		}
	}
	return count
}

func boolResult(b bool) Bitfield {
	if b {
		return width1True()
	}
	return width1False()
}

// icmpOrderedViaRange extracts each operand's bounding box under the
// predicate's signedness and applies the same definite/disjoint/overlap
// algorithm the interval domain uses.
func icmpOrderedViaRange(pred predicate.Int, a, b Bitfield) Bitfield {
	ar, br := a.Range(), b.Range()
	signed := pred.Signed()

	var aLo, aHi, bLo, bHi *big.Int
	if signed {
		aLo, aHi = boundsOrFull(ar, true, a.width)
		bLo, bHi = boundsOrFull(br, true, b.width)
	} else {
		aLo, aHi = boundsOrFull(ar, false, a.width)
		bLo, bHi = boundsOrFull(br, false, b.width)
	}

	cmp := func(x, y *big.Int) int { return x.Cmp(y) }
	aBeforeB := cmp(aHi, bLo) < 0
	bBeforeA := cmp(bHi, aLo) < 0
	disjoint := aBeforeB || bBeforeA
	equalConstants := cmp(aLo, aHi) == 0 && cmp(bLo, bHi) == 0 && cmp(aLo, bLo) == 0

	switch pred {
	case predicate.ULT, predicate.SLT:
		if equalConstants {
			return boolResult(false)
		}
		if disjoint {
			return boolResult(aBeforeB)
		}
	case predicate.UGT, predicate.SGT:
		if equalConstants {
			return boolResult(false)
		}
		if disjoint {
			return boolResult(bBeforeA)
		}
	case predicate.ULE, predicate.SLE:
		if equalConstants {
			return boolResult(true)
		}
		if disjoint {
			return boolResult(!bBeforeA)
		}
	case predicate.UGE, predicate.SGE:
		if equalConstants {
			return boolResult(true)
		}
		if disjoint {
			return boolResult(!aBeforeB)
		}
	}
	return width1Top()
}

func boundsOrFull(r domain.IntRange, signed bool, width int) (lo, hi *big.Int) {
	if r.Top || r.Bottom {
		if signed {
			return bignum.MinSigned(width).Signed(), bignum.MaxSigned(width).Signed()
		}
		return bignum.MinUnsigned(width).Unsigned(), bignum.MaxUnsigned(width).Unsigned()
	}
	if signed {
		return r.SignedLo, r.SignedHi
	}
	return r.UnsignedLo, r.UnsignedHi
}
