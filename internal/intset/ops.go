package intset

import (
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/obslog"
)

// cartesian applies f to every pair (x, y) with x in a.values, y in
// b.values, inserting each concrete result, aborting to top on overflow
// or on exceeding the threshold.
func (v Set) cartesian(op string, bv domain.IntValue, f func(x, y bignum.APInt) (bignum.APInt, bool)) domain.IntValue {
	b := mustSet(op, bv)
	checkWidth(op, v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width, v.threshold)
	}
	if v.top || b.top {
		return Top(v.width, v.threshold)
	}
	result := Bottom(v.width, v.threshold)
	for _, x := range v.values {
		for _, y := range b.values {
			r, ok := f(x, y)
			if !ok {
				obslog.Absorbed(op, "Set", "concrete operation overflowed or undefined")
				return Top(v.width, v.threshold)
			}
			result = result.insert(r)
			if result.top {
				return result
			}
		}
	}
	return result
}

func (v Set) Add(bv domain.IntValue) domain.IntValue {
	return v.cartesian("add", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		r, overflow := bignum.AddSigned(x, y)
		return r, !overflow
	})
}

func (v Set) Sub(bv domain.IntValue) domain.IntValue {
	return v.cartesian("sub", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		r, overflow := bignum.SubSigned(x, y)
		return r, !overflow
	})
}

func (v Set) Mul(bv domain.IntValue) domain.IntValue {
	return v.cartesian("mul", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		r, overflow := bignum.MulSigned(x, y)
		return r, !overflow
	})
}

// UDiv/SDiv/URem/SRem: division by a set containing 0 collapses to top.
func (v Set) UDiv(bv domain.IntValue) domain.IntValue {
	if setContainsZero(bv) {
		return v.divByZeroTop("udiv", bv)
	}
	return v.cartesian("udiv", bv, bignum.UDiv)
}

func (v Set) SDiv(bv domain.IntValue) domain.IntValue {
	if setContainsZero(bv) {
		return v.divByZeroTop("sdiv", bv)
	}
	return v.cartesian("sdiv", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		r, overflow, ok := bignum.SDiv(x, y)
		return r, ok && !overflow
	})
}

func (v Set) URem(bv domain.IntValue) domain.IntValue {
	if setContainsZero(bv) {
		return v.divByZeroTop("urem", bv)
	}
	return v.cartesian("urem", bv, bignum.URem)
}

func (v Set) SRem(bv domain.IntValue) domain.IntValue {
	if setContainsZero(bv) {
		return v.divByZeroTop("srem", bv)
	}
	return v.cartesian("srem", bv, bignum.SRem)
}

func setContainsZero(bv domain.IntValue) bool {
	b, ok := bv.(Set)
	if !ok || b.top {
		return ok && b.top
	}
	for _, x := range b.values {
		if x.IsZero() {
			return true
		}
	}
	return false
}

func (v Set) divByZeroTop(op string, bv domain.IntValue) domain.IntValue {
	b := mustSet(op, bv)
	checkWidth(op, v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width, v.threshold)
	}
	obslog.Absorbed(op, "Set", "divisor set contains zero")
	return Top(v.width, v.threshold)
}

// Shl/Lshr/Ashr/And/Or/Xor are exact Cartesian products: bitwise ops
// are exact.
func (v Set) Shl(bv domain.IntValue) domain.IntValue {
	return v.cartesian("shl", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		amt := y.Unsigned().Uint64()
		if amt >= uint64(x.Width()) {
			return bignum.Zero(x.Width()), true
		}
		return bignum.Shl(x, uint(amt)), true
	})
}

func (v Set) Lshr(bv domain.IntValue) domain.IntValue {
	return v.cartesian("lshr", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		amt := y.Unsigned().Uint64()
		if amt >= uint64(x.Width()) {
			return bignum.Zero(x.Width()), true
		}
		return bignum.Lshr(x, uint(amt)), true
	})
}

func (v Set) Ashr(bv domain.IntValue) domain.IntValue {
	return v.cartesian("ashr", bv, func(x, y bignum.APInt) (bignum.APInt, bool) {
		amt := y.Unsigned().Uint64()
		if amt >= uint64(x.Width()) {
			amt = uint64(x.Width()) - 1
		}
		return bignum.Ashr(x, uint(amt)), true
	})
}

func (v Set) And(bv domain.IntValue) domain.IntValue {
	return v.cartesian("and", bv, func(x, y bignum.APInt) (bignum.APInt, bool) { return bignum.And(x, y), true })
}

func (v Set) Or(bv domain.IntValue) domain.IntValue {
	return v.cartesian("or", bv, func(x, y bignum.APInt) (bignum.APInt, bool) { return bignum.Or(x, y), true })
}

func (v Set) Xor(bv domain.IntValue) domain.IntValue {
	return v.cartesian("xor", bv, func(x, y bignum.APInt) (bignum.APInt, bool) { return bignum.Xor(x, y), true })
}
