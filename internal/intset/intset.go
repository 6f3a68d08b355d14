// Package intset implements the Integer Set abstract domain: an
// explicit finite set of width-w integers, bounded by a configurable
// cardinality threshold above which the set collapses to top. Values
// are kept sorted under unsigned comparison: values is a set
// (unsigned-comparison ordered).
package intset

import (
	"sort"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/diag"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/obslog"
)

// DefaultThreshold is the default cardinality cutoff, ~40, configurable
// process-wide through absenv.Config rather than read from a global.
const DefaultThreshold = 40

// Set is the Integer Set domain: either top, or an unsigned-ordered,
// deduplicated slice of at most Threshold width-w values.
type Set struct {
	width     int
	top       bool
	threshold int
	values    []bignum.APInt // sorted by unsigned value, deduplicated; empty means bottom unless top
}

var _ domain.IntValue = Set{}
var _ domain.Refinable = Set{}

// Bottom returns the empty, non-top set.
func Bottom(width, threshold int) Set {
	return Set{width: width, threshold: effectiveThreshold(threshold)}
}

// Top returns the saturated set.
func Top(width, threshold int) Set {
	return Set{width: width, top: true, threshold: effectiveThreshold(threshold)}
}

// FromConstant returns the single-element set {v}.
func FromConstant(v bignum.APInt, threshold int) Set {
	return Set{width: v.Width(), threshold: effectiveThreshold(threshold), values: []bignum.APInt{v}}
}

// FromValues builds a set from an arbitrary (possibly unsorted, possibly
// duplicated) slice, collapsing to top if it exceeds threshold.
func FromValues(width, threshold int, vs []bignum.APInt) Set {
	s := Set{width: width, threshold: effectiveThreshold(threshold)}
	for _, v := range vs {
		s = s.insert(v)
	}
	return s
}

func effectiveThreshold(threshold int) int {
	if threshold <= 0 {
		return DefaultThreshold
	}
	return threshold
}

func (v Set) Width() int { return v.width }

// Threshold returns the cardinality bound this set collapses to top
// beyond, used by the widening manager to rebuild an equivalent top.
func (v Set) Threshold() int { return v.threshold }

func (v Set) IsBottom() bool { return !v.top && len(v.values) == 0 }
func (v Set) IsTop() bool    { return v.top }

func (v Set) Clone() domain.Value {
	c := v
	c.values = append([]bignum.APInt(nil), v.values...)
	return c
}

func (v Set) CloneCleaned() domain.Value { return Bottom(v.width, v.threshold) }

func (v Set) Equal(other domain.Value) bool {
	o, ok := other.(Set)
	if !ok || o.width != v.width {
		return false
	}
	if v.top != o.top {
		return false
	}
	if len(v.values) != len(o.values) {
		return false
	}
	for i := range v.values {
		if !v.values[i].Eq(o.values[i]) {
			return false
		}
	}
	return true
}

// LessOrEqual is subset-or-top: v <= o iff o is top, or every element of
// v appears in o.
func (v Set) LessOrEqual(other domain.Value) bool {
	o, ok := other.(Set)
	if !ok || o.width != v.width {
		return false
	}
	if o.top {
		return true
	}
	if v.top {
		return false
	}
	for _, e := range v.values {
		if !containsSorted(o.values, e) {
			return false
		}
	}
	return true
}

func containsSorted(values []bignum.APInt, v bignum.APInt) bool {
	i := sort.Search(len(values), func(i int) bool {
		return bignum.CmpUnsigned(values[i], v) >= 0
	})
	return i < len(values) && values[i].Eq(v)
}

// insert adds v into the sorted, deduplicated value slice, collapsing to
// top if the threshold is exceeded.
func (v Set) insert(x bignum.APInt) Set {
	if v.top {
		return v
	}
	i := sort.Search(len(v.values), func(i int) bool {
		return bignum.CmpUnsigned(v.values[i], x) >= 0
	})
	if i < len(v.values) && v.values[i].Eq(x) {
		return v
	}
	if len(v.values) >= v.threshold {
		obslog.Absorbed("insert", "Set", "cardinality threshold exceeded")
		return Top(v.width, v.threshold)
	}
	values := make([]bignum.APInt, 0, len(v.values)+1)
	values = append(values, v.values[:i]...)
	values = append(values, x)
	values = append(values, v.values[i:]...)
	return Set{width: v.width, threshold: v.threshold, values: values}
}

// Join is union; collapses to top if the result exceeds threshold.
func (v Set) Join(other domain.Value) domain.Value {
	o := other.(Set)
	if v.top || o.top {
		return Top(v.width, v.threshold)
	}
	result := v
	for _, x := range o.values {
		result = result.insert(x)
		if result.top {
			return result
		}
	}
	return result
}

// Meet is intersection.
func (v Set) Meet(other domain.Value) domain.Value {
	o := other.(Set)
	if v.top {
		return o
	}
	if o.top {
		return v
	}
	var out []bignum.APInt
	for _, x := range v.values {
		if containsSorted(o.values, x) {
			out = append(out, x)
		}
	}
	return Set{width: v.width, threshold: v.threshold, values: out}
}

func (v Set) MemoryUsage() uintptr {
	return 24 + uintptr(len(v.values))*16
}

// Accuracy treats each element of a width-w set as 1/2^w of the value
// space; bottom and top are the lattice's usual extremes.
func (v Set) Accuracy() float64 {
	if v.IsBottom() {
		return 1.0
	}
	if v.top {
		return 0.0
	}
	full := 1 << uint(min(v.width, 62))
	acc := 1.0 - float64(len(v.values))/float64(full)
	if acc < 0 {
		acc = 0
	}
	return acc
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IsSingleValue reports whether the set denotes exactly one value.
func (v Set) IsSingleValue() bool { return !v.top && len(v.values) == 1 }

func (v Set) AsConstant() (bignum.APInt, bool) {
	if v.IsSingleValue() {
		return v.values[0], true
	}
	return bignum.APInt{}, false
}

// Range implements domain.IntValue.Range for product reduction: the
// tightest signed/unsigned bounding box over the set's members.
func (v Set) Range() domain.IntRange {
	if v.IsBottom() {
		return domain.IntRange{Width: v.width, Bottom: true}
	}
	if v.top {
		return domain.IntRange{Width: v.width, Top: true}
	}
	sLo, sHi := v.values[0].Signed(), v.values[0].Signed()
	uLo, uHi := v.values[0].Unsigned(), v.values[0].Unsigned()
	for _, x := range v.values[1:] {
		if x.Signed().Cmp(sLo) < 0 {
			sLo = x.Signed()
		}
		if x.Signed().Cmp(sHi) > 0 {
			sHi = x.Signed()
		}
		if x.Unsigned().Cmp(uLo) < 0 {
			uLo = x.Unsigned()
		}
		if x.Unsigned().Cmp(uHi) > 0 {
			uHi = x.Unsigned()
		}
	}
	return domain.IntRange{Width: v.width, SignedLo: sLo, SignedHi: sHi, UnsignedLo: uLo, UnsignedHi: uHi}
}

func mustSet(op string, x domain.IntValue) Set {
	s, ok := x.(Set)
	if !ok {
		diag.Abort(diag.NewPrecondition(op, "Set", "operand is not a Set"))
	}
	return s
}

func checkWidth(op string, a, b Set) {
	if a.width != b.width {
		diag.Abort(diag.NewPrecondition(op, "Set", "width mismatch"))
	}
}
