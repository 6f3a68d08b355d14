package bitfield

import "github.com/sentra-lang/canalgo/internal/domain"

// Extract implements domain.Refinable: Bitfield publishes nothing unless
// it is a constant, in which case it publishes a single-point MinMax, or
// bottom, in which case it publishes a bottom MinMax.
func (v Bitfield) Extract() domain.Message {
	r := v.Range()
	if r.Top {
		return domain.Message{}
	}
	return domain.Message{MinMax: &domain.MinMaxField{Signed: r, Unsigned: r}}
}

// Refine tightens a constant bitfield is already maximally precise, so
// meeting against a MinMax fact can only ever confirm it (or reveal an
// unreachable state, which Refine reports by returning Bottom); a
// non-constant bitfield gains nothing from MinMax since bit-level facts
// don't follow from an interval-shaped fact.
func (v Bitfield) Refine(merged domain.Message) domain.Value {
	if merged.MinMax == nil {
		return v
	}
	c, ok := v.AsConstant()
	if !ok {
		return v
	}
	r := merged.MinMax.Signed
	if r.Bottom {
		return Bottom(v.width)
	}
	if !r.Top && r.SignedLo != nil {
		if c.Signed().Cmp(r.SignedLo) < 0 || c.Signed().Cmp(r.SignedHi) > 0 {
			return Bottom(v.width)
		}
	}
	return v
}
