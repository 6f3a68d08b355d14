// Package floatdomain implements the Float Interval abstract domain: an
// inclusive [lo, hi] range under one IEEE semantics, with explicit NaN
// handling. Unlike the integer Interval, there is no dual signed/unsigned
// split -- IEEE comparison order is the only order that matters.
package floatdomain

import (
	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/diag"
	"github.com/sentra-lang/canalgo/internal/domain"
)

// FloatInterval is {sem, empty, top, lo, hi, mayBeNaN}. empty is this
// domain's bottom.
type FloatInterval struct {
	sem      absenv.FloatSemantics
	empty    bool
	top      bool
	lo, hi   bignum.APFloat
	mayBeNaN bool
}

var _ domain.FloatValue = FloatInterval{}
var _ domain.Refinable = FloatInterval{}

func Bottom(sem absenv.FloatSemantics) FloatInterval {
	return FloatInterval{sem: sem, empty: true}
}

func Top(sem absenv.FloatSemantics) FloatInterval {
	return FloatInterval{sem: sem, top: true,
		lo: bignum.NegInf(sem), hi: bignum.PosInf(sem), mayBeNaN: true}
}

func FromConstant(v bignum.APFloat) FloatInterval {
	if v.NaN {
		return FloatInterval{sem: v.Sem, lo: v, hi: v, mayBeNaN: true}
	}
	return FloatInterval{sem: v.Sem, lo: v, hi: v}
}

// FromRange builds the interval [lo, hi] with no NaN possibility.
func FromRange(lo, hi bignum.APFloat) FloatInterval {
	return FloatInterval{sem: lo.Sem, lo: lo, hi: hi}
}

// FromRangeMayBeNaN is FromRange plus an explicit NaN possibility flag,
// used by arithmetic operators that detect an indeterminate corner.
func FromRangeMayBeNaN(lo, hi bignum.APFloat, mayBeNaN bool) FloatInterval {
	return FloatInterval{sem: lo.Sem, lo: lo, hi: hi, mayBeNaN: mayBeNaN}
}

func (v FloatInterval) IsBottom() bool { return v.empty }
func (v FloatInterval) IsTop() bool    { return v.top }

func (v FloatInterval) Clone() domain.Value { return v }

func (v FloatInterval) CloneCleaned() domain.Value { return Bottom(v.sem) }

func (v FloatInterval) Equal(other domain.Value) bool {
	o, ok := other.(FloatInterval)
	if !ok || o.sem != v.sem {
		return false
	}
	if v.empty != o.empty || v.top != o.top {
		return false
	}
	if v.empty {
		return true
	}
	loCmp, loNaN := bignum.Cmp(v.lo, o.lo)
	hiCmp, hiNaN := bignum.Cmp(v.hi, o.hi)
	return !loNaN && !hiNaN && loCmp == 0 && hiCmp == 0 && v.mayBeNaN == o.mayBeNaN
}

// LessOrEqual: v <= o iff o's range contains v's range (or o is top) and
// v's NaN possibility implies o's.
func (v FloatInterval) LessOrEqual(other domain.Value) bool {
	o, ok := other.(FloatInterval)
	if !ok || o.sem != v.sem {
		return false
	}
	if v.empty {
		return true
	}
	if o.top {
		return true
	}
	if o.empty {
		return false
	}
	if v.mayBeNaN && !o.mayBeNaN {
		return false
	}
	loCmp, _ := bignum.Cmp(o.lo, v.lo)
	hiCmp, _ := bignum.Cmp(v.hi, o.hi)
	return loCmp <= 0 && hiCmp <= 0
}

// Join is the per-endpoint min/max: the interval widens to cover both
// operands' ranges.
func (v FloatInterval) Join(other domain.Value) domain.Value {
	o := other.(FloatInterval)
	if v.empty {
		return o
	}
	if o.empty {
		return v
	}
	if v.top || o.top {
		return Top(v.sem)
	}
	lo := minFloat(v.lo, o.lo)
	hi := maxFloat(v.hi, o.hi)
	return FromRangeMayBeNaN(lo, hi, v.mayBeNaN || o.mayBeNaN)
}

func (v FloatInterval) Meet(other domain.Value) domain.Value {
	o := other.(FloatInterval)
	if v.empty || o.empty {
		return Bottom(v.sem)
	}
	if v.top {
		return o
	}
	if o.top {
		return v
	}
	lo := maxFloat(v.lo, o.lo)
	hi := minFloat(v.hi, o.hi)
	if cmp, nan := bignum.Cmp(lo, hi); !nan && cmp > 0 {
		return Bottom(v.sem)
	}
	return FromRangeMayBeNaN(lo, hi, v.mayBeNaN && o.mayBeNaN)
}

func minFloat(a, b bignum.APFloat) bignum.APFloat {
	cmp, nan := bignum.Cmp(a, b)
	if nan || cmp <= 0 {
		return a
	}
	return b
}

func maxFloat(a, b bignum.APFloat) bignum.APFloat {
	cmp, nan := bignum.Cmp(a, b)
	if nan || cmp >= 0 {
		return a
	}
	return b
}

func (v FloatInterval) MemoryUsage() uintptr { return 48 }

// Accuracy is 1 - (hi-lo)/(Max-Min) in the semantics, clamped to [0,1].
// Top => 0; bottom => 1.
func (v FloatInterval) Accuracy() float64 {
	if v.empty {
		return 1.0
	}
	if v.top {
		return 0.0
	}
	span := rangeWidthFloat64(v.lo, v.hi)
	full := rangeWidthFloat64(bignum.NegInf(v.sem), bignum.PosInf(v.sem))
	if full == 0 {
		return 1.0
	}
	acc := 1 - span/full
	if acc != acc || acc < 0 {
		acc = 0
	}
	if acc > 1 {
		acc = 1
	}
	return acc
}

func rangeWidthFloat64(lo, hi bignum.APFloat) float64 {
	l, h := lo.Float64(), hi.Float64()
	if l != l || h != h { // NaN
		return 0
	}
	w := h - l
	if w < 0 {
		w = 0
	}
	return w
}

func mustFloatInterval(op string, v domain.FloatValue) FloatInterval {
	fi, ok := v.(FloatInterval)
	if !ok {
		diag.Abort(diag.NewPrecondition(op, "FloatInterval", "operand is not a FloatInterval"))
	}
	return fi
}

func checkSem(op string, a, b FloatInterval) {
	if a.sem != b.sem {
		diag.Abort(diag.NewPrecondition(op, "FloatInterval", "semantics mismatch"))
	}
}

// Bounds implements domain.FloatValue.Bounds for the integer domains'
// fptoui/fptosi to consume without importing this package's concrete
// type.
func (v FloatInterval) Bounds() (lo, hi float64, mayBeNaN, bottom, top bool) {
	if v.empty {
		return 0, 0, false, true, false
	}
	if v.top {
		return 0, 0, true, false, true
	}
	return v.lo.Float64(), v.hi.Float64(), v.mayBeNaN, false, false
}
