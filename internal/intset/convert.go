package intset

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// Trunc/Zext/Sext apply the primitive to every member; truncation may
// collapse members, re-establishing uniqueness via insert.
func (v Set) Trunc(toWidth int) domain.IntValue { return v.mapMembers(toWidth, bignum.Trunc) }
func (v Set) Zext(toWidth int) domain.IntValue  { return v.mapMembers(toWidth, bignum.Zext) }
func (v Set) Sext(toWidth int) domain.IntValue  { return v.mapMembers(toWidth, bignum.Sext) }

func (v Set) mapMembers(toWidth int, f func(bignum.APInt, int) bignum.APInt) domain.IntValue {
	if v.IsBottom() {
		return Bottom(toWidth, v.threshold)
	}
	if v.top {
		return Top(toWidth, v.threshold)
	}
	result := Bottom(toWidth, v.threshold)
	for _, x := range v.values {
		result = result.insert(f(x, toWidth))
		if result.top {
			return result
		}
	}
	return result
}
