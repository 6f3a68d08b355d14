package interval

import (
	"math/big"

	"github.com/dustin/go-humanize"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// Interval is the Integer Interval abstract domain: independent signed
// and unsigned ranges over the same width-w concrete integers. Bottom is
// "both sides empty"; top is "both sides saturated".
type Interval struct {
	width    int
	signed   sidedRange
	unsigned sidedRange
}

var _ domain.IntValue = Interval{}
var _ domain.Refinable = Interval{}

// Bottom returns the empty width-bit interval.
func Bottom(width int) Interval {
	return Interval{width: width, signed: bottomSide(), unsigned: bottomSide()}
}

// Top returns the fully saturated width-bit interval.
func Top(width int) Interval {
	return Interval{width: width, signed: topSide(width, true), unsigned: topSide(width, false)}
}

// FromConstant returns the single-valued interval containing v.
func FromConstant(v bignum.APInt) Interval {
	return Interval{width: v.Width(), signed: constantSide(v), unsigned: constantSide(v)}
}

// FromRange returns the interval [lo, hi] on both sides (the caller
// asserts lo <= hi under both orderings; use FromSignedRange/
// FromUnsignedRange when only one side is known).
func FromRange(lo, hi bignum.APInt) Interval {
	return Interval{width: lo.Width(), signed: rangeSide(lo, hi), unsigned: rangeSide(lo, hi)}
}

// FromSignedRange builds an interval whose signed side is [lo, hi] and
// whose unsigned side is top (unknown).
func FromSignedRange(width int, lo, hi bignum.APInt) Interval {
	return Interval{width: width, signed: rangeSide(lo, hi), unsigned: topSide(width, false)}
}

// FromUnsignedRange builds an interval whose unsigned side is [lo, hi]
// and whose signed side is top (unknown).
func FromUnsignedRange(width int, lo, hi bignum.APInt) Interval {
	return Interval{width: width, signed: topSide(width, true), unsigned: rangeSide(lo, hi)}
}

func (v Interval) Width() int { return v.width }

func (v Interval) IsBottom() bool { return v.signed.isBottom() && v.unsigned.isBottom() }
func (v Interval) IsTop() bool    { return v.signed.isTop() && v.unsigned.isTop() }

func (v Interval) Clone() domain.Value { return v }

func (v Interval) CloneCleaned() domain.Value { return Bottom(v.width) }

func (v Interval) Equal(other domain.Value) bool {
	o, ok := other.(Interval)
	if !ok || o.width != v.width {
		return false
	}
	return equalSide(v.signed, o.signed) && equalSide(v.unsigned, o.unsigned)
}

func (v Interval) LessOrEqual(other domain.Value) bool {
	o, ok := other.(Interval)
	if !ok || o.width != v.width {
		return false
	}
	return lessOrEqualSide(true, v.signed, o.signed) && lessOrEqualSide(false, v.unsigned, o.unsigned)
}

// Join is the interval domain's lattice join. Widening is never applied
// here; it is a separate replacement the widening manager substitutes at
// designated join points.
func (v Interval) Join(other domain.Value) domain.Value {
	o := other.(Interval)
	return Interval{
		width:    v.width,
		signed:   joinSide(v.width, true, v.signed, o.signed),
		unsigned: joinSide(v.width, false, v.unsigned, o.unsigned),
	}
}

func (v Interval) Meet(other domain.Value) domain.Value {
	o := other.(Interval)
	return Interval{
		width:    v.width,
		signed:   meetSide(v.width, true, v.signed, o.signed),
		unsigned: meetSide(v.width, false, v.unsigned, o.unsigned),
	}
}

func (v Interval) MemoryUsage() uintptr {
	// Two APInt ranges, each backed by a big.Int whose Bits() word count
	// approximates allocator footprint; humanize is used only for the
	// formatted form (see MemoryUsageString), not by this estimate
	// itself, so it stays a plain arithmetic formula here.
	words := func(s sidedRange) uintptr {
		if s.kind != sideRange {
			return 0
		}
		return uintptr(len(s.lo.Unsigned().Bits())+len(s.hi.Unsigned().Bits())) * 8
	}
	return 48 + words(v.signed) + words(v.unsigned)
}

// MemoryUsageString renders MemoryUsage with humanize.Bytes as a
// human-facing byte count rather than the raw uintptr.
func (v Interval) MemoryUsageString() string {
	return humanize.Bytes(uint64(v.MemoryUsage()))
}

// Accuracy is 1 when the interval is a single value or bottom, 0 when
// top, and otherwise the fraction of the width's value space NOT covered
// by the tighter of the two sides.
func (v Interval) Accuracy() float64 {
	if v.IsBottom() {
		return 1.0
	}
	if v.IsTop() {
		return 0.0
	}
	full := new(big.Float).SetInt(bignum.MaxUnsigned(v.width).Unsigned())
	full.Add(full, big.NewFloat(1))

	best := 0.0
	if !v.signed.isTop() && !v.signed.isBottom() {
		span := new(big.Int).Sub(v.signed.hi.Unsigned(), v.signed.lo.Unsigned())
		// signed side may wrap relative to unsigned magnitude; use the
		// absolute distance under signed arithmetic directly.
		span = new(big.Int).Sub(v.signed.hi.Signed(), v.signed.lo.Signed())
		span.Add(span, big.NewInt(1))
		spanF := new(big.Float).SetInt(span)
		ratio := new(big.Float).Quo(spanF, full)
		r, _ := ratio.Float64()
		acc := 1 - r
		if acc > best {
			best = acc
		}
	}
	if !v.unsigned.isTop() && !v.unsigned.isBottom() {
		span := new(big.Int).Sub(v.unsigned.hi.Unsigned(), v.unsigned.lo.Unsigned())
		span.Add(span, big.NewInt(1))
		spanF := new(big.Float).SetInt(span)
		ratio := new(big.Float).Quo(spanF, full)
		r, _ := ratio.Float64()
		acc := 1 - r
		if acc > best {
			best = acc
		}
	}
	if best < 0 {
		best = 0
	}
	if best > 1 {
		best = 1
	}
	return best
}

// IsSignedSingleValue / IsUnsignedSingleValue / IsSingleValue answer
// constant queries: a "constant" requires both sides to be degenerate
// and equal.
func (v Interval) IsSignedSingleValue() bool   { return v.signed.isSingleValue() }
func (v Interval) IsUnsignedSingleValue() bool { return v.unsigned.isSingleValue() }

func (v Interval) IsSingleValue() bool {
	return v.IsSignedSingleValue() && v.IsUnsignedSingleValue() && v.signed.lo.Eq(v.unsigned.lo)
}

// AsConstant returns the single concrete value this interval denotes, if
// both sides agree on one: signedRange(v) ∩ unsignedRange(v) is never
// empty unless v is bottom.
func (v Interval) AsConstant() (bignum.APInt, bool) {
	if v.IsSingleValue() {
		return v.signed.lo, true
	}
	return bignum.APInt{}, false
}

// Range implements domain.IntValue.Range for the product reduction
// protocol: Interval publishes MinMax(signedRange, unsignedRange).
func (v Interval) Range() domain.IntRange {
	r := domain.IntRange{Width: v.width}
	if v.IsBottom() {
		r.Bottom = true
		return r
	}
	if v.IsTop() {
		r.Top = true
		return r
	}
	if !v.signed.isBottom() {
		if v.signed.isTop() {
			r.SignedLo, r.SignedHi = bignum.MinSigned(v.width).Signed(), bignum.MaxSigned(v.width).Signed()
		} else {
			r.SignedLo, r.SignedHi = v.signed.lo.Signed(), v.signed.hi.Signed()
		}
	}
	if !v.unsigned.isBottom() {
		if v.unsigned.isTop() {
			r.UnsignedLo, r.UnsignedHi = bignum.MinUnsigned(v.width).Unsigned(), bignum.MaxUnsigned(v.width).Unsigned()
		} else {
			r.UnsignedLo, r.UnsignedHi = v.unsigned.lo.Unsigned(), v.unsigned.hi.Unsigned()
		}
	}
	return r
}
