// Package interval implements the Integer Interval abstract domain: a
// dual signed/unsigned range. The two sides are tracked independently
// because the same concrete integer set can be contiguous under one
// ordering and fragmented under the other (e.g. {-1, 0} is
// signed-contiguous but unsigned-disjoint).
package interval

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
)

// sideKind distinguishes bottom/top from an ordinary [lo, hi] range: two
// coupled sum types instead of a pair of mutually-exclusive boolean
// flags per side.
type sideKind uint8

const (
	sideBottom sideKind = iota
	sideTop
	sideRange
)

// sidedRange is one side (signed or unsigned) of an Interval.
type sidedRange struct {
	kind sideKind
	lo   bignum.APInt
	hi   bignum.APInt
}

func bottomSide() sidedRange { return sidedRange{kind: sideBottom} }

func topSide(width int, signed bool) sidedRange {
	if signed {
		return sidedRange{kind: sideTop, lo: bignum.MinSigned(width), hi: bignum.MaxSigned(width)}
	}
	return sidedRange{kind: sideTop, lo: bignum.MinUnsigned(width), hi: bignum.MaxUnsigned(width)}
}

func rangeSide(lo, hi bignum.APInt) sidedRange { return sidedRange{kind: sideRange, lo: lo, hi: hi} }

func constantSide(v bignum.APInt) sidedRange { return sidedRange{kind: sideRange, lo: v, hi: v} }

func (s sidedRange) isBottom() bool { return s.kind == sideBottom }
func (s sidedRange) isTop() bool    { return s.kind == sideTop }

func (s sidedRange) isSingleValue() bool {
	return s.kind == sideRange && s.lo.Eq(s.hi)
}

func cmp(signed bool, a, b bignum.APInt) int {
	if signed {
		return bignum.CmpSigned(a, b)
	}
	return bignum.CmpUnsigned(a, b)
}

func minOf(signed bool, a, b bignum.APInt) bignum.APInt {
	if cmp(signed, a, b) <= 0 {
		return a
	}
	return b
}

func maxOf(signed bool, a, b bignum.APInt) bignum.APInt {
	if cmp(signed, a, b) >= 0 {
		return a
	}
	return b
}

// joinSide is the per-side lattice join.
func joinSide(width int, signed bool, a, b sidedRange) sidedRange {
	if a.isBottom() {
		return b
	}
	if b.isBottom() {
		return a
	}
	if a.isTop() || b.isTop() {
		return topSide(width, signed)
	}
	return rangeSide(minOf(signed, a.lo, b.lo), maxOf(signed, a.hi, b.hi))
}

// meetSide is the per-side lattice meet.
func meetSide(width int, signed bool, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if a.isTop() {
		return b
	}
	if b.isTop() {
		return a
	}
	lo := maxOf(signed, a.lo, b.lo)
	hi := minOf(signed, a.hi, b.hi)
	if cmp(signed, lo, hi) > 0 {
		return bottomSide()
	}
	return rangeSide(lo, hi)
}

func lessOrEqualSide(signed bool, a, b sidedRange) bool {
	if a.isBottom() {
		return true
	}
	if b.isTop() {
		return true
	}
	if b.isBottom() || a.isTop() {
		return false
	}
	return cmp(signed, b.lo, a.lo) <= 0 && cmp(signed, a.hi, b.hi) <= 0
}

func equalSide(a, b sidedRange) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind != sideRange {
		return true
	}
	return a.lo.Eq(b.lo) && a.hi.Eq(b.hi)
}

// intersectsSide reports whether a and b's ranges overlap at all. Both
// must already be non-bottom, non-top ranges.
func intersectsSide(signed bool, a, b sidedRange) bool {
	return cmp(signed, a.lo, b.hi) <= 0 && cmp(signed, b.lo, a.hi) <= 0
}
