// Package bignum implements arbitrary-precision, width-tagged integer and
// IEEE float primitives: signed/unsigned add/sub/mul/div/rem reporting
// overflow, truncate/zero-extend/sign-extend, and float<->int conversion
// with status flags. Every abstract domain in sibling packages is built
// on top of these.
package bignum

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// bigfftCutoverBits is the operand bit length above which multiplication
// is routed through bigfft's FFT-based algorithm instead of math/big's
// native schoolbook/Karatsuba multiply, matching the crossover bigfft's
// own benchmarks document for when FFT multiplication starts winning.
const bigfftCutoverBits = 4096

func mulBig(a, b *big.Int) *big.Int {
	if a.BitLen() > bigfftCutoverBits && b.BitLen() > bigfftCutoverBits {
		return bigfft.Mul(a, b)
	}
	return new(big.Int).Mul(a, b)
}

// APInt is a fixed-width integer value, stored as its raw two's-complement
// bit pattern in [0, 2^width). Signed() and Unsigned() interpret that
// pattern under each ordering; both are always well defined for any APInt.
type APInt struct {
	width int
	bits  *big.Int // invariant: 0 <= bits < 2^width
}

func mask(width int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return m.Sub(m, big.NewInt(1))
}

// normalize masks v into [0, 2^width), treating a negative v as its
// two's-complement encoding (so FromBigInt accepts signed inputs too).
func normalize(width int, v *big.Int) *big.Int {
	m := mask(width)
	r := new(big.Int).And(v, m)
	if r.Sign() < 0 {
		// big.Int.And on a negative operand in Go follows two's
		// complement semantics already, but guard defensively.
		r.Add(r, new(big.Int).Lsh(big.NewInt(1), uint(width)))
	}
	return r
}

// FromBigInt builds a width-bit APInt from v, which may be negative (its
// two's-complement encoding is taken) or exceed the width (it is masked).
func FromBigInt(width int, v *big.Int) APInt {
	return APInt{width: width, bits: normalize(width, v)}
}

// FromUint64 builds a width-bit APInt from an unsigned machine value.
func FromUint64(width int, v uint64) APInt {
	return FromBigInt(width, new(big.Int).SetUint64(v))
}

// FromInt64 builds a width-bit APInt from a signed machine value.
func FromInt64(width int, v int64) APInt {
	return FromBigInt(width, big.NewInt(v))
}

// Zero returns the width-bit zero value.
func Zero(width int) APInt { return FromUint64(width, 0) }

func (a APInt) Width() int { return a.width }

// Unsigned returns the value interpreted as an unsigned integer in
// [0, 2^width).
func (a APInt) Unsigned() *big.Int { return new(big.Int).Set(a.bits) }

// Signed returns the value interpreted as a two's-complement signed
// integer in [-2^(width-1), 2^(width-1)-1].
func (a APInt) Signed() *big.Int {
	if a.width == 0 {
		return new(big.Int)
	}
	signBit := new(big.Int).Rsh(a.bits, uint(a.width-1))
	if signBit.Sign() == 0 {
		return new(big.Int).Set(a.bits)
	}
	full := new(big.Int).Lsh(big.NewInt(1), uint(a.width))
	return new(big.Int).Sub(a.bits, full)
}

func (a APInt) Eq(b APInt) bool { return a.width == b.width && a.bits.Cmp(b.bits) == 0 }

// SignedString and UnsignedString render a under each ordering, for the
// domains' canonical string serialization.
func (a APInt) SignedString() string   { return a.Signed().String() }
func (a APInt) UnsignedString() string { return a.Unsigned().String() }

func (a APInt) IsZero() bool { return a.bits.Sign() == 0 }

// CmpUnsigned compares a and b under unsigned ordering: -1, 0, or 1.
func CmpUnsigned(a, b APInt) int { return a.Unsigned().Cmp(b.Unsigned()) }

// CmpSigned compares a and b under signed ordering: -1, 0, or 1.
func CmpSigned(a, b APInt) int { return a.Signed().Cmp(b.Signed()) }

// MinUnsigned/MaxUnsigned/MinSigned/MaxSigned are the width-bit extremes.
func MinUnsigned(width int) APInt { return Zero(width) }

func MaxUnsigned(width int) APInt { return APInt{width: width, bits: mask(width)} }

func MinSigned(width int) APInt {
	if width == 0 {
		return Zero(0)
	}
	v := new(big.Int).Lsh(big.NewInt(1), uint(width-1))
	return FromBigInt(width, v.Neg(v))
}

func MaxSigned(width int) APInt {
	if width == 0 {
		return Zero(0)
	}
	v := new(big.Int).Lsh(big.NewInt(1), uint(width-1))
	return FromBigInt(width, v.Sub(v, big.NewInt(1)))
}

// AddUnsigned adds a and b as unsigned integers, reporting carry-out.
func AddUnsigned(a, b APInt) (result APInt, overflow bool) {
	full := new(big.Int).Add(a.Unsigned(), b.Unsigned())
	overflow = full.Cmp(mask(a.width)) > 0
	return FromBigInt(a.width, full), overflow
}

// AddSigned adds a and b as signed integers, reporting signed overflow.
func AddSigned(a, b APInt) (result APInt, overflow bool) {
	full := new(big.Int).Add(a.Signed(), b.Signed())
	overflow = full.Cmp(MinSigned(a.width).Signed()) < 0 || full.Cmp(MaxSigned(a.width).Signed()) > 0
	return FromBigInt(a.width, full), overflow
}

func SubUnsigned(a, b APInt) (result APInt, overflow bool) {
	full := new(big.Int).Sub(a.Unsigned(), b.Unsigned())
	overflow = full.Sign() < 0
	return FromBigInt(a.width, full), overflow
}

func SubSigned(a, b APInt) (result APInt, overflow bool) {
	full := new(big.Int).Sub(a.Signed(), b.Signed())
	overflow = full.Cmp(MinSigned(a.width).Signed()) < 0 || full.Cmp(MaxSigned(a.width).Signed()) > 0
	return FromBigInt(a.width, full), overflow
}

func MulUnsigned(a, b APInt) (result APInt, overflow bool) {
	full := mulBig(a.Unsigned(), b.Unsigned())
	overflow = full.Cmp(mask(a.width)) > 0
	return FromBigInt(a.width, full), overflow
}

func MulSigned(a, b APInt) (result APInt, overflow bool) {
	full := mulBig(a.Signed(), b.Signed())
	overflow = full.Cmp(MinSigned(a.width).Signed()) < 0 || full.Cmp(MaxSigned(a.width).Signed()) > 0
	return FromBigInt(a.width, full), overflow
}

// UDiv divides a by b as unsigned integers. ok is false iff b is zero.
func UDiv(a, b APInt) (result APInt, ok bool) {
	if b.IsZero() {
		return Zero(a.width), false
	}
	q := new(big.Int).Div(a.Unsigned(), b.Unsigned())
	return FromBigInt(a.width, q), true
}

// URem computes a % b as unsigned integers. ok is false iff b is zero.
func URem(a, b APInt) (result APInt, ok bool) {
	if b.IsZero() {
		return Zero(a.width), false
	}
	r := new(big.Int).Mod(a.Unsigned(), b.Unsigned())
	return FromBigInt(a.width, r), true
}

// SDiv divides a by b as signed integers, truncating toward zero. ok is
// false iff b is zero; overflow is true only for MinSigned/-1.
func SDiv(a, b APInt) (result APInt, overflow bool, ok bool) {
	if b.IsZero() {
		return Zero(a.width), false, false
	}
	q := new(big.Int).Quo(a.Signed(), b.Signed())
	overflow = q.Cmp(MinSigned(a.width).Signed()) < 0 || q.Cmp(MaxSigned(a.width).Signed()) > 0
	return FromBigInt(a.width, q), overflow, true
}

// SRem computes a % b as signed integers (result takes the sign of the
// dividend, matching LLVM srem / C's %). ok is false iff b is zero.
func SRem(a, b APInt) (result APInt, ok bool) {
	if b.IsZero() {
		return Zero(a.width), false
	}
	r := new(big.Int).Rem(a.Signed(), b.Signed())
	return FromBigInt(a.width, r), true
}

func Shl(a APInt, amount uint) APInt {
	if amount >= uint(a.width) {
		return Zero(a.width)
	}
	return FromBigInt(a.width, new(big.Int).Lsh(a.bits, amount))
}

func Lshr(a APInt, amount uint) APInt {
	if amount >= uint(a.width) {
		return Zero(a.width)
	}
	return FromBigInt(a.width, new(big.Int).Rsh(a.bits, amount))
}

func Ashr(a APInt, amount uint) APInt {
	if amount >= uint(a.width) {
		if CmpSigned(a, Zero(a.width)) < 0 {
			return MaxUnsigned(a.width) // all-ones
		}
		return Zero(a.width)
	}
	return FromBigInt(a.width, new(big.Int).Rsh(a.Signed(), amount))
}

func And(a, b APInt) APInt { return FromBigInt(a.width, new(big.Int).And(a.bits, b.bits)) }
func Or(a, b APInt) APInt  { return FromBigInt(a.width, new(big.Int).Or(a.bits, b.bits)) }
func Xor(a, b APInt) APInt { return FromBigInt(a.width, new(big.Int).Xor(a.bits, b.bits)) }
func Not(a APInt) APInt    { return FromBigInt(a.width, new(big.Int).Not(a.bits)) }

// Trunc keeps the low toWidth bits of a.
func Trunc(a APInt, toWidth int) APInt { return FromBigInt(toWidth, a.bits) }

// Zext re-widens a, preserving its unsigned value.
func Zext(a APInt, toWidth int) APInt { return FromBigInt(toWidth, a.Unsigned()) }

// Sext re-widens a, preserving its signed value.
func Sext(a APInt, toWidth int) APInt { return FromBigInt(toWidth, a.Signed()) }
