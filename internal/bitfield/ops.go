package bitfield

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/obslog"
)

// And/Or/Xor compute per-bit truth tables over the four abstract values,
// exact and cheap.
func (v Bitfield) And(bv domain.IntValue) domain.IntValue {
	b := mustBitfield("and", bv)
	checkWidth("and", v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	// AND can be 1 only where both operands can be 1; it can be 0 unless
	// both operands are definitely 1 at that position.
	canBeOne := new(big.Int).And(v.ones, b.ones)
	canBeZero := orOfANDTruthTable(v, b)
	return normalizeMask(v.width, Bitfield{width: v.width, zeros: canBeZero, ones: canBeOne})
}

// orOfANDTruthTable computes, per bit, whether AND(a,b) can yield 0: true
// unless both a and b are definitely 1 at that position.
func orOfANDTruthTable(a, b Bitfield) *big.Int {
	bothDefinitelyOne := new(big.Int).And(
		new(big.Int).AndNot(a.ones, a.zeros),
		new(big.Int).AndNot(b.ones, b.zeros),
	)
	return new(big.Int).Not(bothDefinitelyOne)
}

func (v Bitfield) Or(bv domain.IntValue) domain.IntValue {
	b := mustBitfield("or", bv)
	checkWidth("or", v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	canBeOne := new(big.Int).Or(v.ones, b.ones)
	bothDefinitelyZero := new(big.Int).And(
		new(big.Int).AndNot(v.zeros, v.ones),
		new(big.Int).AndNot(b.zeros, b.ones),
	)
	canBeZero := new(big.Int).Not(bothDefinitelyZero)
	return normalizeMask(v.width, Bitfield{width: v.width, zeros: canBeZero, ones: canBeOne})
}

func (v Bitfield) Xor(bv domain.IntValue) domain.IntValue {
	b := mustBitfield("xor", bv)
	checkWidth("xor", v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	// XOR result bit i is definite iff both operand bits are definite;
	// value is the XOR of the definite values. If either operand bit is
	// top, the result bit is top (unless the result is pinned some other
	// way, which XOR's truth table never does).
	var zeros, ones big.Int
	for i := 0; i < v.width; i++ {
		az, ao := v.zeros.Bit(i), v.ones.Bit(i)
		bz, bo := b.zeros.Bit(i), b.ones.Bit(i)
		aDef, aVal := az != ao, ao == 1
		bDef, bVal := bz != bo, bo == 1
		switch {
		case aDef && bDef:
			if aVal != bVal {
				ones.SetBit(&ones, i, 1)
			} else {
				zeros.SetBit(&zeros, i, 1)
			}
		default:
			zeros.SetBit(&zeros, i, 1)
			ones.SetBit(&ones, i, 1)
		}
	}
	return Bitfield{width: v.width, zeros: &zeros, ones: &ones}
}

func normalizeMask(width int, v Bitfield) Bitfield {
	m := allOnes(width)
	return Bitfield{width: width, zeros: new(big.Int).And(v.zeros, m), ones: new(big.Int).And(v.ones, m)}
}

// Shl: constant shift amount rotates the representation left, filling low
// bits with definite-0; an interval shift amount (not representable here,
// since the operand is itself a Bitfield) joins over every possible
// amount the operand denotes, saturating to top if too many distinct
// amounts are possible.
func (v Bitfield) Shl(bv domain.IntValue) domain.IntValue {
	b := mustBitfield("shl", bv)
	checkWidth("shl", v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	if amt, ok := b.AsConstant(); ok {
		n := int(amt.Unsigned().Uint64())
		if n >= v.width {
			return FromConstant(bignum.Zero(v.width))
		}
		return shiftLeftBy(v, n)
	}
	return joinOverShiftAmounts(v, b, shiftLeftBy)
}

func shiftLeftBy(v Bitfield, n int) Bitfield {
	zeros := new(big.Int).Lsh(v.zeros, uint(n))
	ones := new(big.Int).Lsh(v.ones, uint(n))
	low := new(big.Int).Lsh(big.NewInt(1), uint(n))
	low.Sub(low, big.NewInt(1))
	zeros.Or(zeros, low) // low n bits are definitely 0
	return normalizeMask(v.width, Bitfield{width: v.width, zeros: zeros, ones: ones})
}

// Lshr fills high bits with definite-0.
func (v Bitfield) Lshr(bv domain.IntValue) domain.IntValue {
	b := mustBitfield("lshr", bv)
	checkWidth("lshr", v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	if amt, ok := b.AsConstant(); ok {
		n := int(amt.Unsigned().Uint64())
		if n >= v.width {
			return FromConstant(bignum.Zero(v.width))
		}
		return shiftRightLogicalBy(v, n)
	}
	return joinOverShiftAmounts(v, b, shiftRightLogicalBy)
}

func shiftRightLogicalBy(v Bitfield, n int) Bitfield {
	zeros := new(big.Int).Rsh(v.zeros, uint(n))
	ones := new(big.Int).Rsh(v.ones, uint(n))
	highMask := new(big.Int).Lsh(big.NewInt(1), uint(v.width))
	highMask.Sub(highMask, new(big.Int).Lsh(big.NewInt(1), uint(v.width-n)))
	zeros.Or(zeros, highMask)
	return normalizeMask(v.width, Bitfield{width: v.width, zeros: zeros, ones: ones})
}

// Ashr fills high bits with the sign bit's abstract value (itself if
// determined, else top).
func (v Bitfield) Ashr(bv domain.IntValue) domain.IntValue {
	b := mustBitfield("ashr", bv)
	checkWidth("ashr", v, b)
	if v.IsBottom() || b.IsBottom() {
		return Bottom(v.width)
	}
	if amt, ok := b.AsConstant(); ok {
		n := int(amt.Unsigned().Uint64())
		if n >= v.width {
			n = v.width
		}
		return shiftRightArithmeticBy(v, n)
	}
	return joinOverShiftAmounts(v, b, func(v Bitfield, n int) Bitfield {
		if n >= v.width {
			n = v.width
		}
		return shiftRightArithmeticBy(v, n)
	})
}

func shiftRightArithmeticBy(v Bitfield, n int) Bitfield {
	if n == 0 {
		return v
	}
	signZero := v.zeros.Bit(v.width - 1)
	signOne := v.ones.Bit(v.width - 1)
	zeros := new(big.Int).Rsh(v.zeros, uint(n))
	ones := new(big.Int).Rsh(v.ones, uint(n))
	for i := v.width - n; i < v.width; i++ {
		if i < 0 {
			continue
		}
		zeros.SetBit(zeros, i, signZero)
		ones.SetBit(ones, i, signOne)
	}
	return normalizeMask(v.width, Bitfield{width: v.width, zeros: zeros, ones: ones})
}

const shiftAmountFanoutLimit = 64

// joinOverShiftAmounts enumerates the concrete shift amounts b's bitfield
// representation admits and joins the shifted results, saturating to top
// if the enumeration would be too large.
func joinOverShiftAmounts(v, b Bitfield, shift func(Bitfield, int) Bitfield) domain.IntValue {
	count := 0
	result := Bottom(v.width)
	for n := 0; n <= b.width && n <= shiftAmountFanoutLimit; n++ {
		candidate := FromConstant(bignum.FromUint64(b.width, uint64(n)))
		merged := b.Meet(candidate).(Bitfield)
		if merged.IsBottom() {
			continue
		}
		count++
		if count > shiftAmountFanoutLimit {
			obslog.Absorbed("shl/lshr/ashr", "Bitfield", "shift amount fanout exceeded limit")
			return Top(v.width)
		}
		result = result.Join(shift(v, n)).(Bitfield)
	}
	if count == 0 {
		return Bottom(v.width)
	}
	return result
}
