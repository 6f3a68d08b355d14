package interval

import "github.com/sentra-lang/canalgo/internal/domain"

// Shl/Lshr/Ashr/And/Or/Xor surrender precision here entirely -- if
// either operand is bottom, bottom; otherwise top. The bitfield domain
// (internal/bitfield) handles these precisely, and the reduced product
// (internal/product) recovers precision at the product level. This is a
// deliberate precision/complexity tradeoff, preserved as-is.

func (v Interval) bitwiseTop(op string, bv domain.IntValue) domain.IntValue {
	b := mustInterval(op, bv)
	checkWidth(op, v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	return Top(v.width)
}

func (v Interval) Shl(bv domain.IntValue) domain.IntValue  { return v.bitwiseTop("shl", bv) }
func (v Interval) Lshr(bv domain.IntValue) domain.IntValue { return v.bitwiseTop("lshr", bv) }
func (v Interval) Ashr(bv domain.IntValue) domain.IntValue { return v.bitwiseTop("ashr", bv) }
func (v Interval) And(bv domain.IntValue) domain.IntValue  { return v.bitwiseTop("and", bv) }
func (v Interval) Or(bv domain.IntValue) domain.IntValue   { return v.bitwiseTop("or", bv) }
func (v Interval) Xor(bv domain.IntValue) domain.IntValue  { return v.bitwiseTop("xor", bv) }
