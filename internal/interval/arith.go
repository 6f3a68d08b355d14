package interval

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/diag"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/obslog"
)

func mustInterval(op string, v domain.IntValue) Interval {
	iv, ok := v.(Interval)
	if !ok {
		diag.Abort(diag.NewPrecondition(op, "Interval", "operand is not an Interval"))
	}
	return iv
}

func checkWidth(op string, a, b Interval) {
	if a.width != b.width {
		diag.Abort(diag.NewPrecondition(op, "Interval", "width mismatch"))
	}
}

// Add computes the interval sum per side, propagating overflow by
// widening that side to top.
func (v Interval) Add(bv domain.IntValue) domain.IntValue {
	b := mustInterval("add", bv)
	checkWidth("add", v, b)
	return Interval{width: v.width,
		signed:   addSide(v.width, true, v.signed, b.signed),
		unsigned: addSide(v.width, false, v.unsigned, b.unsigned),
	}
}

func addSide(width int, signed bool, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if a.isTop() || b.isTop() {
		return topSide(width, signed)
	}
	lo, loOverflow := addAPInt(signed, a.lo, b.lo)
	hi, hiOverflow := addAPInt(signed, a.hi, b.hi)
	if loOverflow || hiOverflow {
		obslog.Absorbed("add", "Interval", "endpoint overflow")
		return topSide(width, signed)
	}
	return rangeSide(lo, hi)
}

func addAPInt(signed bool, a, b bignum.APInt) (bignum.APInt, bool) {
	if signed {
		return bignum.AddSigned(a, b)
	}
	return bignum.AddUnsigned(a, b)
}

// Sub computes lo = Lo(a) - Hi(b), hi = Hi(a) - Lo(b), accounting for
// the sign flip of the second operand.
func (v Interval) Sub(bv domain.IntValue) domain.IntValue {
	b := mustInterval("sub", bv)
	checkWidth("sub", v, b)
	return Interval{width: v.width,
		signed:   subSide(v.width, true, v.signed, b.signed),
		unsigned: subSide(v.width, false, v.unsigned, b.unsigned),
	}
}

func subSide(width int, signed bool, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if a.isTop() || b.isTop() {
		return topSide(width, signed)
	}
	lo, loOverflow := subAPInt(signed, a.lo, b.hi)
	hi, hiOverflow := subAPInt(signed, a.hi, b.lo)
	if loOverflow || hiOverflow {
		obslog.Absorbed("sub", "Interval", "endpoint overflow")
		return topSide(width, signed)
	}
	return rangeSide(lo, hi)
}

func subAPInt(signed bool, a, b bignum.APInt) (bignum.APInt, bool) {
	if signed {
		return bignum.SubSigned(a, b)
	}
	return bignum.SubUnsigned(a, b)
}

// Mul computes the four corner products, min/max under the side's
// comparison, with overflow on any corner widening the whole side to
// top.
func (v Interval) Mul(bv domain.IntValue) domain.IntValue {
	b := mustInterval("mul", bv)
	checkWidth("mul", v, b)
	return Interval{width: v.width,
		signed:   mulSide(v.width, true, v.signed, b.signed),
		unsigned: mulSide(v.width, false, v.unsigned, b.unsigned),
	}
}

func mulSide(width int, signed bool, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if a.isTop() || b.isTop() {
		return topSide(width, signed)
	}
	corners := [4][2]bignum.APInt{{a.lo, b.lo}, {a.lo, b.hi}, {a.hi, b.lo}, {a.hi, b.hi}}
	var results []bignum.APInt
	for _, c := range corners {
		var r bignum.APInt
		var overflow bool
		if signed {
			r, overflow = bignum.MulSigned(c[0], c[1])
		} else {
			r, overflow = bignum.MulUnsigned(c[0], c[1])
		}
		if overflow {
			obslog.Absorbed("mul", "Interval", "corner product overflow")
			return topSide(width, signed)
		}
		results = append(results, r)
	}
	lo, hi := results[0], results[0]
	for _, r := range results[1:] {
		lo = minOf(signed, lo, r)
		hi = maxOf(signed, hi, r)
	}
	return rangeSide(lo, hi)
}

// UDiv only operates on the unsigned side; the signed side is left top.
func (v Interval) UDiv(bv domain.IntValue) domain.IntValue {
	b := mustInterval("udiv", bv)
	checkWidth("udiv", v, b)
	return Interval{width: v.width,
		signed:   topSide(v.width, true),
		unsigned: udivSide(v.width, v.unsigned, b.unsigned),
	}
}

func udivSide(width int, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if b.isTop() {
		return topSide(width, false)
	}
	zero := bignum.Zero(width)
	if b.isSingleValue() && b.lo.IsZero() {
		obslog.Absorbed("udiv", "Interval", "division by constant zero")
		return topSide(width, false)
	}
	divLo, divHi := b.lo, b.hi
	if cmp(false, divLo, zero) <= 0 && cmp(false, divHi, zero) >= 0 {
		// Divisor spans (or includes) zero: divide only by the
		// non-zero portion. For unsigned, zero is the minimum, so the
		// non-zero portion is [1, divHi] unless divHi is also zero.
		if divHi.IsZero() {
			obslog.Absorbed("udiv", "Interval", "divisor interval is exactly zero")
			return topSide(width, false)
		}
		divLo = bignum.FromUint64(width, 1)
	}
	var results []bignum.APInt
	for _, d := range []bignum.APInt{divLo, divHi} {
		q, ok := bignum.UDiv(a.lo, d)
		if !ok {
			continue
		}
		results = append(results, q)
		q2, _ := bignum.UDiv(a.hi, d)
		results = append(results, q2)
	}
	if len(results) == 0 {
		return topSide(width, false)
	}
	lo, hi := results[0], results[0]
	for _, r := range results[1:] {
		lo = minOf(false, lo, r)
		hi = maxOf(false, hi, r)
	}
	return rangeSide(lo, hi)
}

// SDiv only operates on the signed side. If the divisor spans
// negative-through-positive, divide by the extreme non-zero divisors
// {-1, +1} and take min/max.
func (v Interval) SDiv(bv domain.IntValue) domain.IntValue {
	b := mustInterval("sdiv", bv)
	checkWidth("sdiv", v, b)
	return Interval{width: v.width,
		unsigned: topSide(v.width, false),
		signed:   sdivSide(v.width, v.signed, b.signed),
	}
}

func sdivSide(width int, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if b.isTop() {
		return topSide(width, true)
	}
	zero := bignum.Zero(width)
	if b.isSingleValue() && b.lo.IsZero() {
		obslog.Absorbed("sdiv", "Interval", "division by constant zero")
		return topSide(width, true)
	}
	negOne := bignum.FromInt64(width, -1)
	posOne := bignum.FromInt64(width, 1)
	var divisors []bignum.APInt
	if cmp(true, b.lo, zero) < 0 && cmp(true, b.hi, zero) > 0 {
		divisors = []bignum.APInt{negOne, posOne}
	} else if b.lo.IsZero() {
		divisors = []bignum.APInt{posOne, b.hi}
	} else if b.hi.IsZero() {
		divisors = []bignum.APInt{b.lo, negOne}
	} else {
		divisors = []bignum.APInt{b.lo, b.hi}
	}
	var results []bignum.APInt
	sawOverflow := false
	for _, d := range divisors {
		for _, n := range []bignum.APInt{a.lo, a.hi} {
			q, overflow, ok := bignum.SDiv(n, d)
			if !ok {
				continue
			}
			if overflow {
				sawOverflow = true
				continue
			}
			results = append(results, q)
		}
	}
	if len(results) == 0 {
		if sawOverflow {
			obslog.Absorbed("sdiv", "Interval", "INT_MIN / -1 overflow")
		}
		return topSide(width, true)
	}
	lo, hi := results[0], results[0]
	for _, r := range results[1:] {
		lo = minOf(true, lo, r)
		hi = maxOf(true, hi, r)
	}
	if sawOverflow {
		obslog.Absorbed("sdiv", "Interval", "INT_MIN / -1 overflow on some corner")
	}
	return rangeSide(lo, hi)
}

// URem computes a precise box when the divisor is a non-zero constant
// and the dividend's cardinality is small, else falls back to [0, d-1]
// or top for a non-constant divisor.
func (v Interval) URem(bv domain.IntValue) domain.IntValue {
	b := mustInterval("urem", bv)
	checkWidth("urem", v, b)
	return Interval{width: v.width,
		signed:   topSide(v.width, true),
		unsigned: uremSide(v.width, v.unsigned, b.unsigned),
	}
}

func uremSide(width int, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if b.isTop() {
		return topSide(width, false)
	}
	if b.isSingleValue() {
		d := b.lo
		if d.IsZero() {
			obslog.Absorbed("urem", "Interval", "remainder by constant zero")
			return topSide(width, false)
		}
		if !a.isTop() {
			loQ, _ := bignum.URem(a.lo, d)
			hiQ, _ := bignum.URem(a.hi, d)
			// only precise if a doesn't wrap around a multiple of d
			diff, _ := bignum.SubUnsigned(a.hi, a.lo)
			loDiv, _ := bignum.UDiv(a.lo, d)
			hiDiv, _ := bignum.UDiv(a.hi, d)
			if bignum.CmpUnsigned(diff, d) < 0 && loDiv.Eq(hiDiv) {
				return rangeSide(minOf(false, loQ, hiQ), maxOf(false, loQ, hiQ))
			}
		}
		dMinusOne, _ := bignum.SubUnsigned(d, bignum.FromUint64(width, 1))
		return rangeSide(bignum.Zero(width), dMinusOne)
	}
	return topSide(width, false)
}

// SRem is the signed analogue of urem, with a signed-aware fallback box
// [-(D-1), +(D-1)] where D is the maximum absolute divisor.
func (v Interval) SRem(bv domain.IntValue) domain.IntValue {
	b := mustInterval("srem", bv)
	checkWidth("srem", v, b)
	return Interval{width: v.width,
		unsigned: topSide(v.width, false),
		signed:   sremSide(v.width, v.signed, b.signed),
	}
}

func sremSide(width int, a, b sidedRange) sidedRange {
	if a.isBottom() || b.isBottom() {
		return bottomSide()
	}
	if b.isTop() {
		return topSide(width, true)
	}
	if b.isSingleValue() {
		d := b.lo
		if d.IsZero() {
			obslog.Absorbed("srem", "Interval", "remainder by constant zero")
			return topSide(width, true)
		}
		if !a.isTop() {
			loQ, _ := bignum.SRem(a.lo, d)
			hiQ, _ := bignum.SRem(a.hi, d)
			diff, _ := bignum.SubSigned(a.hi, a.lo)
			absD := d
			if absD.Signed().Sign() < 0 {
				absD = bignum.FromBigInt(width, new(big.Int).Neg(absD.Signed()))
			}
			loDiv, _, _ := bignum.SDiv(a.lo, d)
			hiDiv, _, _ := bignum.SDiv(a.hi, d)
			if bignum.CmpSigned(diff, absD) < 0 && loDiv.Eq(hiDiv) {
				return rangeSide(minOf(true, loQ, hiQ), maxOf(true, loQ, hiQ))
			}
		}
	}
	dMax := maxAbs(width, b)
	dMinusOne, _ := bignum.SubSigned(dMax, bignum.FromInt64(width, 1))
	negBound, _ := bignum.SubSigned(bignum.Zero(width), dMinusOne)
	return rangeSide(negBound, dMinusOne)
}

// maxAbs returns the maximum absolute value either endpoint of b can take.
func maxAbs(width int, b sidedRange) bignum.APInt {
	abs := func(v bignum.APInt) bignum.APInt {
		if v.Signed().Sign() < 0 {
			neg, _ := bignum.SubSigned(bignum.Zero(width), v)
			return neg
		}
		return v
	}
	lo, hi := abs(b.lo), abs(b.hi)
	return maxOf(true, lo, hi)
}
