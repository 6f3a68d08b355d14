package floatdomain

import (
	"math/big"

	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/obslog"
)

// cornerOp computes the four corner IEEE operations with correct
// rounding and merges them into a new interval; an endpoint going to
// +/-Inf or NaN propagates into the merged result rather than being
// discarded.
func cornerOp(op string, v, b FloatInterval, f func(x, y bignum.APFloat) bignum.APFloat) domain.FloatValue {
	checkSem(op, v, b)
	if v.empty || b.empty {
		return Bottom(v.sem)
	}
	if v.top || b.top {
		return Top(v.sem)
	}
	corners := [4]bignum.APFloat{
		f(v.lo, b.lo), f(v.lo, b.hi), f(v.hi, b.lo), f(v.hi, b.hi),
	}
	lo, hi := corners[0], corners[0]
	mayBeNaN := v.mayBeNaN || b.mayBeNaN
	for _, c := range corners[1:] {
		if c.NaN {
			mayBeNaN = true
			continue
		}
		if lo.NaN || cmpLess(c, lo) {
			lo = c
		}
		if hi.NaN || cmpLess(hi, c) {
			hi = c
		}
	}
	if corners[0].NaN {
		// seed lo/hi from the first non-NaN corner, if any
		lo, hi = firstNonNaN(corners[:])
	}
	if lo.NaN {
		obslog.Absorbed(op, "FloatInterval", "every corner produced NaN")
		return Top(v.sem)
	}
	return FromRangeMayBeNaN(lo, hi, mayBeNaN)
}

func cmpLess(a, b bignum.APFloat) bool {
	c, nan := bignum.Cmp(a, b)
	return !nan && c < 0
}

func firstNonNaN(corners []bignum.APFloat) (lo, hi bignum.APFloat) {
	for _, c := range corners {
		if !c.NaN {
			return c, c
		}
	}
	return corners[0], corners[0]
}

func (v FloatInterval) FAdd(bv domain.FloatValue) domain.FloatValue {
	return cornerOp("fadd", v, mustFloatInterval("fadd", bv), bignum.Add)
}

func (v FloatInterval) FSub(bv domain.FloatValue) domain.FloatValue {
	return cornerOp("fsub", v, mustFloatInterval("fsub", bv), bignum.Sub)
}

func (v FloatInterval) FMul(bv domain.FloatValue) domain.FloatValue {
	return cornerOp("fmul", v, mustFloatInterval("fmul", bv), bignum.Mul)
}

// FDiv divides, handling the divisor touching or containing zero without
// collapsing straight to top: division by an interval containing zero
// yields +/-Inf at the appropriate endpoint instead. A divisor interval
// that only touches zero at one endpoint (e.g. [-1.0, 0.0]) is handled by
// treating that endpoint as the signed-zero limit approached from the
// interval's own side, so the corner quotients carry the correct sign; a
// divisor that contains zero as a genuine interior point (or is the
// single point zero) cannot be sign-resolved and widens to the full real
// line plus possible NaN.
func (v FloatInterval) FDiv(bv domain.FloatValue) domain.FloatValue {
	b := mustFloatInterval("fdiv", bv)
	checkSem("fdiv", v, b)
	if v.empty || b.empty {
		return Bottom(v.sem)
	}
	if v.top || b.top {
		return Top(v.sem)
	}

	loSign, loNaN := bignum.Cmp(b.lo, bignum.FloatZero(b.sem))
	hiSign, hiNaN := bignum.Cmp(b.hi, bignum.FloatZero(b.sem))
	if loNaN || hiNaN {
		return Top(v.sem)
	}

	switch {
	case loSign > 0 || hiSign < 0:
		// divisor strictly one-signed, no zero involved.
		return cornerOp("fdiv", v, b, bignum.Quo)
	case loSign == 0 && hiSign == 0:
		obslog.Absorbed("fdiv", "FloatInterval", "divisor interval is exactly zero")
		return FromRangeMayBeNaN(bignum.NegInf(v.sem), bignum.PosInf(v.sem), true)
	case loSign < 0 && hiSign > 0:
		obslog.Absorbed("fdiv", "FloatInterval", "divisor interval spans zero")
		vLoSign, _ := bignum.Cmp(v.lo, bignum.FloatZero(v.sem))
		vHiSign, _ := bignum.Cmp(v.hi, bignum.FloatZero(v.sem))
		dividendMayBeZero := vLoSign <= 0 && vHiSign >= 0
		return FromRangeMayBeNaN(bignum.NegInf(v.sem), bignum.PosInf(v.sem), v.mayBeNaN || b.mayBeNaN || dividendMayBeZero)
	case hiSign == 0:
		// divisor entirely <= 0, touching zero only at hi: treat hi as
		// the negative-zero limit.
		obslog.Absorbed("fdiv", "FloatInterval", "divisor touches zero from below")
		adjusted := FloatInterval{sem: b.sem, lo: b.lo, hi: negZero(b.sem), mayBeNaN: b.mayBeNaN}
		return cornerOp("fdiv", v, adjusted, bignum.Quo)
	default: // loSign == 0
		// divisor entirely >= 0, touching zero only at lo: treat lo as
		// the positive-zero limit (already how FloatZero is represented).
		obslog.Absorbed("fdiv", "FloatInterval", "divisor touches zero from above")
		return cornerOp("fdiv", v, b, bignum.Quo)
	}
}

func negZero(sem absenv.FloatSemantics) bignum.APFloat {
	z := bignum.FloatZero(sem)
	return bignum.APFloat{Sem: sem, Val: new(big.Float).Neg(z.Val)}
}

func (v FloatInterval) FRem(bv domain.FloatValue) domain.FloatValue {
	return cornerOp("frem", v, mustFloatInterval("frem", bv), bignum.Rem)
}
