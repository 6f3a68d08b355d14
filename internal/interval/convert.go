package interval

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// Trunc truncates both endpoints of each side into the target width; if
// the truncation flips the relative order of the endpoints, swap them;
// width-1 targets with differing endpoints collapse to top.
func (v Interval) Trunc(toWidth int) domain.IntValue {
	return Interval{width: toWidth,
		signed:   truncSide(toWidth, true, v.signed),
		unsigned: truncSide(toWidth, false, v.unsigned),
	}
}

func truncSide(toWidth int, signed bool, s sidedRange) sidedRange {
	if s.isBottom() {
		return bottomSide()
	}
	if s.isTop() {
		return topSide(toWidth, signed)
	}
	lo := bignum.Trunc(s.lo, toWidth)
	hi := bignum.Trunc(s.hi, toWidth)
	if cmp(signed, lo, hi) > 0 {
		lo, hi = hi, lo
	}
	if toWidth == 1 && !lo.Eq(hi) {
		return topSide(toWidth, signed)
	}
	return rangeSide(lo, hi)
}

// Zext re-widens both sides preserving the unsigned value; the signed
// side becomes the unsigned copy (a zero-extended value is never
// negative).
func (v Interval) Zext(toWidth int) domain.IntValue {
	unsigned := zextSide(toWidth, false, v.unsigned)
	return Interval{width: toWidth, signed: unsigned, unsigned: unsigned}
}

func zextSide(toWidth int, signed bool, s sidedRange) sidedRange {
	if s.isBottom() {
		return bottomSide()
	}
	if s.isTop() {
		return topSide(toWidth, false)
	}
	return rangeSide(bignum.Zext(s.lo, toWidth), bignum.Zext(s.hi, toWidth))
}

// Sext sign-extends both sides.
func (v Interval) Sext(toWidth int) domain.IntValue {
	return Interval{width: toWidth,
		signed:   sextSide(toWidth, true, v.signed),
		unsigned: sextSide(toWidth, false, v.unsigned),
	}
}

func sextSide(toWidth int, signed bool, s sidedRange) sidedRange {
	if s.isBottom() {
		return bottomSide()
	}
	if s.isTop() {
		return topSide(toWidth, signed)
	}
	return rangeSide(bignum.Sext(s.lo, toWidth), bignum.Sext(s.hi, toWidth))
}

// FPToUI and FPToSI convert the float interval's endpoints through the
// IEEE->integer primitive; any out-of-range or NaN endpoint forces top.
func FPToUI(f domain.FloatValue, toWidth int) Interval {
	lo, hi, nan, bottom, top := f.Bounds()
	if bottom {
		return Bottom(toWidth)
	}
	if nan || top {
		return Top(toWidth)
	}
	return convertFloatRange(toWidth, false, lo, hi)
}

func FPToSI(f domain.FloatValue, toWidth int) Interval {
	lo, hi, nan, bottom, top := f.Bounds()
	if bottom {
		return Bottom(toWidth)
	}
	if nan || top {
		return Top(toWidth)
	}
	return convertFloatRange(toWidth, true, lo, hi)
}

func convertFloatRange(toWidth int, signed bool, lo, hi float64) Interval {
	var minB, maxB bignum.APInt
	if signed {
		minB, maxB = bignum.MinSigned(toWidth), bignum.MaxSigned(toWidth)
	} else {
		minB, maxB = bignum.MinUnsigned(toWidth), bignum.MaxUnsigned(toWidth)
	}
	minF, maxF := minB.Signed(), maxB.Signed()
	if !signed {
		minF, maxF = minB.Unsigned(), maxB.Unsigned()
	}
	minFloat, _ := new(big.Float).SetInt(minF).Float64()
	maxFloat, _ := new(big.Float).SetInt(maxF).Float64()
	if lo < minFloat || hi > maxFloat {
		return Top(toWidth)
	}
	loInt := bignum.FromBigInt(toWidth, bigIntFromFloat64(lo))
	hiInt := bignum.FromBigInt(toWidth, bigIntFromFloat64(hi))
	if signed {
		return FromSignedRange(toWidth, loInt, hiInt)
	}
	return FromUnsignedRange(toWidth, loInt, hiInt)
}

func bigIntFromFloat64(f float64) *big.Int {
	i, _ := big.NewFloat(f).Int(nil)
	return i
}
