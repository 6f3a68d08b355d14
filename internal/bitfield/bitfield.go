// Package bitfield implements the Integer Bitfield abstract domain: a
// width-w per-bit tristate value. Two parallel bit-strings, zeros and
// ones, encode each bit's abstract value:
//
//	(1,0) definitely 0
//	(0,1) definitely 1
//	(1,1) top (either)
//	(0,0) bottom (impossible) -- any such bit makes the whole value bottom
package bitfield

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/diag"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// Bitfield is the per-bit tristate domain. zeros and ones are width-w bit
// patterns stored as *big.Int with bit i meaning "0 is possible at i" /
// "1 is possible at i" respectively.
type Bitfield struct {
	width int
	zeros *big.Int
	ones  *big.Int
}

var _ domain.IntValue = Bitfield{}
var _ domain.Refinable = Bitfield{}

func allOnes(width int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return m.Sub(m, big.NewInt(1))
}

// Bottom returns a value with every bit impossible; equivalently any value
// with at least one (0,0) bit collapses to this representation.
func Bottom(width int) Bitfield {
	return Bitfield{width: width, zeros: big.NewInt(0), ones: big.NewInt(0)}
}

// Top returns a value where every bit is (1,1), i.e. unconstrained.
func Top(width int) Bitfield {
	return Bitfield{width: width, zeros: allOnes(width), ones: allOnes(width)}
}

// FromConstant returns the bitfield with every bit definite, matching v.
func FromConstant(v bignum.APInt) Bitfield {
	bits := v.Unsigned()
	ones := new(big.Int).Set(bits)
	zeros := new(big.Int).Xor(allOnes(v.Width()), ones)
	return Bitfield{width: v.Width(), zeros: zeros, ones: ones}
}

func (v Bitfield) Width() int { return v.width }

// hasImpossibleBit reports whether any position has (zeros=0, ones=0).
func (v Bitfield) hasImpossibleBit() bool {
	possible := new(big.Int).Or(v.zeros, v.ones)
	return possible.Cmp(allOnes(v.width)) != 0
}

func (v Bitfield) IsBottom() bool { return v.hasImpossibleBit() }

func (v Bitfield) IsTop() bool {
	return v.zeros.Cmp(allOnes(v.width)) == 0 && v.ones.Cmp(allOnes(v.width)) == 0
}

func (v Bitfield) Clone() domain.Value { return v }

func (v Bitfield) CloneCleaned() domain.Value { return Bottom(v.width) }

func (v Bitfield) Equal(other domain.Value) bool {
	o, ok := other.(Bitfield)
	if !ok || o.width != v.width {
		return false
	}
	return v.zeros.Cmp(o.zeros) == 0 && v.ones.Cmp(o.ones) == 0
}

// LessOrEqual: v <= o iff every bit of v is at least as constrained as o,
// i.e. v's possibility sets are subsets of o's.
func (v Bitfield) LessOrEqual(other domain.Value) bool {
	o, ok := other.(Bitfield)
	if !ok || o.width != v.width {
		return false
	}
	zerosSubset := new(big.Int).AndNot(v.zeros, o.zeros).Sign() == 0
	onesSubset := new(big.Int).AndNot(v.ones, o.ones).Sign() == 0
	return zerosSubset && onesSubset
}

// Join is bitwise OR: either side's definite bit becomes merely possible.
func (v Bitfield) Join(other domain.Value) domain.Value {
	o := other.(Bitfield)
	return Bitfield{width: v.width,
		zeros: new(big.Int).Or(v.zeros, o.zeros),
		ones:  new(big.Int).Or(v.ones, o.ones),
	}
}

// Meet is bitwise AND: more restrictive.
func (v Bitfield) Meet(other domain.Value) domain.Value {
	o := other.(Bitfield)
	return Bitfield{width: v.width,
		zeros: new(big.Int).And(v.zeros, o.zeros),
		ones:  new(big.Int).And(v.ones, o.ones),
	}
}

func (v Bitfield) MemoryUsage() uintptr {
	return 32 + uintptr(len(v.zeros.Bits())+len(v.ones.Bits()))*8
}

// Accuracy counts definite bits over total width; bottom is 1.0 (a
// contradiction pins down nothing further useful, but per the universal
// lattice convention bottom is maximally accurate), top is 0.0.
func (v Bitfield) Accuracy() float64 {
	if v.IsBottom() {
		return 1.0
	}
	definite := 0
	for i := 0; i < v.width; i++ {
		z := v.zeros.Bit(i)
		o := v.ones.Bit(i)
		if z != o {
			definite++
		}
	}
	return float64(definite) / float64(v.width)
}

func mustBitfield(op string, v domain.IntValue) Bitfield {
	bf, ok := v.(Bitfield)
	if !ok {
		diag.Abort(diag.NewPrecondition(op, "Bitfield", "operand is not a Bitfield"))
	}
	return bf
}

func checkWidth(op string, a, b Bitfield) {
	if a.width != b.width {
		diag.Abort(diag.NewPrecondition(op, "Bitfield", "width mismatch"))
	}
}

// IsConstant reports whether every bit is definite (no (1,1) position).
func (v Bitfield) IsConstant() bool {
	if v.IsBottom() {
		return false
	}
	overlap := new(big.Int).And(v.zeros, v.ones)
	return overlap.Sign() == 0
}

// AsConstant returns the concrete value this bitfield denotes, if every
// bit is definite.
func (v Bitfield) AsConstant() (bignum.APInt, bool) {
	if !v.IsConstant() {
		return bignum.APInt{}, false
	}
	return bignum.FromBigInt(v.width, v.ones), true
}

// Range implements domain.IntValue.Range for product reduction: a
// constant bitfield publishes a single-point box; otherwise nothing
// (represented here as Top, a neutral fact under Message.Meet).
func (v Bitfield) Range() domain.IntRange {
	if v.IsBottom() {
		return domain.IntRange{Width: v.width, Bottom: true}
	}
	if c, ok := v.AsConstant(); ok {
		return domain.IntRange{Width: v.width,
			SignedLo: c.Signed(), SignedHi: c.Signed(),
			UnsignedLo: c.Unsigned(), UnsignedHi: c.Unsigned(),
		}
	}
	return domain.IntRange{Width: v.width, Top: true}
}
