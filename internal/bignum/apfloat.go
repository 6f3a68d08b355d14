package bignum

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/absenv"
)

// APFloat is an arbitrary-precision float tagged with an IEEE semantics.
// It is backed by math/big.Float, whose mantissa precision is pinned to
// FloatSemantics.MantissaBits and whose magnitude is clamped to +/-Inf at
// FloatSemantics.MaxExponent, approximating the six target formats
// uniformly instead of needing six separate Go numeric types.
type APFloat struct {
	Sem absenv.FloatSemantics
	NaN bool
	Val *big.Float // meaningless when NaN is true
}

func round(sem absenv.FloatSemantics, f *big.Float) *big.Float {
	f.SetPrec(sem.MantissaBits())
	if f.IsInf() {
		return f
	}
	if exp := f.MantExp(nil); exp > sem.MaxExponent() {
		inf := new(big.Float).SetPrec(sem.MantissaBits())
		inf.SetInf(f.Sign() < 0)
		return inf
	}
	if sem == absenv.X87_80 || sem == absenv.Quad {
		return canonicalizeExtended(sem, f)
	}
	return f
}

func FromFloat64(sem absenv.FloatSemantics, v float64) APFloat {
	if v != v { // NaN
		return APFloat{Sem: sem, NaN: true}
	}
	f := new(big.Float).SetPrec(sem.MantissaBits()).SetFloat64(v)
	return APFloat{Sem: sem, Val: round(sem, f)}
}

func PosInf(sem absenv.FloatSemantics) APFloat {
	f := new(big.Float).SetPrec(sem.MantissaBits())
	f.SetInf(false)
	return APFloat{Sem: sem, Val: f}
}

func NegInf(sem absenv.FloatSemantics) APFloat {
	f := new(big.Float).SetPrec(sem.MantissaBits())
	f.SetInf(true)
	return APFloat{Sem: sem, Val: f}
}

func FloatZero(sem absenv.FloatSemantics) APFloat { return FromFloat64(sem, 0) }

// Recast reinterprets a under a different semantics, rounding to the new
// mantissa width (fptrunc) or simply re-tagging with more room (fpext).
// Infinity and NaN pass through unchanged.
func Recast(sem absenv.FloatSemantics, a APFloat) APFloat {
	if a.NaN {
		return NaNValue(sem)
	}
	if a.IsInf() {
		if a.Val.Signbit() {
			return NegInf(sem)
		}
		return PosInf(sem)
	}
	z := new(big.Float).SetPrec(sem.MantissaBits())
	z.Set(a.Val)
	return APFloat{Sem: sem, Val: round(sem, z)}
}

func NaNValue(sem absenv.FloatSemantics) APFloat { return APFloat{Sem: sem, NaN: true} }

func (a APFloat) Float64() float64 {
	if a.NaN {
		return nan64()
	}
	f, _ := a.Val.Float64()
	return f
}

func nan64() float64 {
	var z float64
	return z / z
}

func (a APFloat) IsInf() bool { return !a.NaN && a.Val.IsInf() }

// String renders a in decimal, using "infinity"/"-infinity"/"nan" for the
// non-finite cases, matching the domains' canonical string serialization.
func (a APFloat) String() string {
	if a.NaN {
		return "nan"
	}
	if a.Val.IsInf() {
		if a.Val.Signbit() {
			return "-infinity"
		}
		return "infinity"
	}
	return a.Val.Text('g', -1)
}

func (a APFloat) Sign() int {
	if a.NaN {
		return 0
	}
	return a.Val.Sign()
}

// Cmp compares a and b, returning hasNaN=true (result undefined) if
// either operand is NaN.
func Cmp(a, b APFloat) (result int, hasNaN bool) {
	if a.NaN || b.NaN {
		return 0, true
	}
	return a.Val.Cmp(b.Val), false
}

// Add computes a + b. Inf + (-Inf) is the one indeterminate case; math/big
// panics on it, so it is detected explicitly and turned into NaN.
func Add(a, b APFloat) APFloat {
	if a.NaN || b.NaN {
		return NaNValue(a.Sem)
	}
	if a.IsInf() && b.IsInf() && a.Val.Signbit() != b.Val.Signbit() {
		return NaNValue(a.Sem)
	}
	z := new(big.Float).SetPrec(a.Sem.MantissaBits())
	z.Add(a.Val, b.Val)
	return APFloat{Sem: a.Sem, Val: round(a.Sem, z)}
}

// Sub computes a - b. Inf - Inf (same sign) is indeterminate.
func Sub(a, b APFloat) APFloat {
	if a.NaN || b.NaN {
		return NaNValue(a.Sem)
	}
	if a.IsInf() && b.IsInf() && a.Val.Signbit() == b.Val.Signbit() {
		return NaNValue(a.Sem)
	}
	z := new(big.Float).SetPrec(a.Sem.MantissaBits())
	z.Sub(a.Val, b.Val)
	return APFloat{Sem: a.Sem, Val: round(a.Sem, z)}
}

// Mul computes a * b. 0 * Inf (in either order) is indeterminate.
func Mul(a, b APFloat) APFloat {
	if a.NaN || b.NaN {
		return NaNValue(a.Sem)
	}
	if (a.Sign() == 0 && b.IsInf()) || (b.Sign() == 0 && a.IsInf()) {
		return NaNValue(a.Sem)
	}
	z := new(big.Float).SetPrec(a.Sem.MantissaBits())
	z.Mul(a.Val, b.Val)
	return APFloat{Sem: a.Sem, Val: round(a.Sem, z)}
}

// Quo divides a by b. Division by zero with a nonzero dividend is NOT
// indeterminate: it is signed infinity, matching IEEE 754 -- callers must
// not collapse that case to top. 0/0 and Inf/Inf are indeterminate.
func Quo(a, b APFloat) APFloat {
	if a.NaN || b.NaN {
		return NaNValue(a.Sem)
	}
	if b.Sign() == 0 {
		if a.Sign() == 0 {
			return NaNValue(a.Sem)
		}
		if (a.Sign() < 0) == b.Val.Signbit() {
			return PosInf(a.Sem)
		}
		return NegInf(a.Sem)
	}
	if a.IsInf() && b.IsInf() {
		return NaNValue(a.Sem)
	}
	z := new(big.Float).SetPrec(a.Sem.MantissaBits())
	z.Quo(a.Val, b.Val)
	return APFloat{Sem: a.Sem, Val: round(a.Sem, z)}
}

// Rem computes the C/LLVM frem remainder a - n*b where n = trunc(a/b),
// via float64 since frem is not order-sensitive the way add/sub/mul/div
// corner reductions are.
func Rem(a, b APFloat) APFloat {
	if a.NaN || b.NaN || b.Sign() == 0 {
		return NaNValue(a.Sem)
	}
	af, bf := a.Float64(), b.Float64()
	r := af - bf*float64(int64(af/bf))
	return FromFloat64(a.Sem, r)
}
