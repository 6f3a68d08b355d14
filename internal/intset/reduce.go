package intset

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// Extract implements domain.Refinable: Set publishes nothing here.
func (v Set) Extract() domain.Message { return domain.Message{} }

// Refine tightens the set by dropping members outside the merged MinMax
// fact, since any range-level fact the product knows is a sound
// constraint on every member.
func (v Set) Refine(merged domain.Message) domain.Value {
	if merged.MinMax == nil || v.IsBottom() || v.top {
		return v
	}
	r := merged.MinMax.Signed
	if r.Bottom {
		return Bottom(v.width, v.threshold)
	}
	if r.Top || r.SignedLo == nil {
		return v
	}
	return v.filterBySignedRange(r.SignedLo, r.SignedHi)
}

func (v Set) filterBySignedRange(lo, hi *big.Int) Set {
	var out []bignum.APInt
	for _, x := range v.values {
		if x.Signed().Cmp(lo) >= 0 && x.Signed().Cmp(hi) <= 0 {
			out = append(out, x)
		}
	}
	return Set{width: v.width, threshold: v.threshold, values: out}
}
