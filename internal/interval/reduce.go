package interval

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// Extract implements domain.Refinable: Interval publishes its own Range()
// as the product-reduction MinMax fact -- MinMax(signedRange,
// unsignedRange).
func (v Interval) Extract() domain.Message {
	r := v.Range()
	return domain.Message{MinMax: &domain.MinMaxField{Signed: r, Unsigned: r}}
}

// Refine implements domain.Refinable: Interval tightens each side by
// meeting it against the merged MinMax fact, if present.
func (v Interval) Refine(merged domain.Message) domain.Value {
	if merged.MinMax == nil {
		return v
	}
	signed := rangeFromIntRange(v.width, true, merged.MinMax.Signed)
	unsigned := rangeFromIntRange(v.width, false, merged.MinMax.Unsigned)
	refined := Interval{
		width:    v.width,
		signed:   meetSide(v.width, true, v.signed, signed),
		unsigned: meetSide(v.width, false, v.unsigned, unsigned),
	}
	return refined
}

// rangeFromIntRange converts a product-level IntRange back into this
// domain's sidedRange representation, for the one side Refine cares about.
func rangeFromIntRange(width int, signed bool, r domain.IntRange) sidedRange {
	if r.Bottom {
		return bottomSide()
	}
	if r.Top {
		return topSide(width, signed)
	}
	if signed {
		if r.SignedLo == nil || r.SignedHi == nil {
			return topSide(width, signed)
		}
		return rangeSide(bignum.FromBigInt(width, r.SignedLo), bignum.FromBigInt(width, r.SignedHi))
	}
	if r.UnsignedLo == nil || r.UnsignedHi == nil {
		return topSide(width, signed)
	}
	return rangeSide(bignum.FromBigInt(width, r.UnsignedLo), bignum.FromBigInt(width, r.UnsignedHi))
}
