package product

import (
	"math/big"
	"testing"

	"github.com/kr/pretty"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/bitfield"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/interval"
	"github.com/sentra-lang/canalgo/internal/intset"
)

func TestReduceKeepsConstantBitfieldAgreeingWithInterval(t *testing.T) {
	width := 8
	// interval [12,12] published as MinMax should let a top bitfield
	// narrow its plausible bit pattern... but bitfield's Refine only
	// confirms/rejects an already-constant bitfield, so this exercises
	// that exact contract: a constant bitfield agreeing with the
	// interval survives unchanged.
	iv := interval.FromConstant(bignum.FromUint64(width, 12))
	bf := bitfield.FromConstant(bignum.FromUint64(width, 12))

	vec := New(iv, bf)
	reduced := vec.Reduce()

	got := reduced.At(1).(bitfield.Bitfield)
	want := bitfield.FromConstant(bignum.FromUint64(width, 12))
	if !got.Equal(want) {
		t.Errorf("bitfield after reduce = %v, want %v", got, want)
	}
}

func TestReduceFiltersSetBySignedRange(t *testing.T) {
	width := 8
	iv := interval.FromRange(bignum.FromInt64(width, 0), bignum.FromInt64(width, 5))
	s := intset.FromValues(width, intset.DefaultThreshold, []bignum.APInt{
		bignum.FromInt64(width, -3),
		bignum.FromInt64(width, 2),
		bignum.FromInt64(width, 40),
	})

	vec := New(iv, s)
	reduced := vec.Reduce()

	got := reduced.At(1).(intset.Set)
	c, ok := got.AsConstant()
	if !ok || c.Signed().Cmp(big.NewInt(2)) != 0 {
		t.Errorf("set after reduce = %v, want {2}", got)
	}
}

func TestIsBottomPropagates(t *testing.T) {
	width := 8
	vec := New(interval.Bottom(width), bitfield.Top(width))
	if !vec.IsBottom() {
		t.Error("vector with a bottom component should be bottom")
	}
}

func TestCloneEqualsOriginal(t *testing.T) {
	width := 8
	iv := interval.FromConstant(bignum.FromUint64(width, 7))
	vec := New(iv)
	cloned := vec.Clone()
	if !cloned.At(0).Equal(vec.At(0)) {
		t.Error("clone should be equal to original immediately after cloning")
	}
}

// Whole-vector equality failures are easiest to debug from a field-level
// diff rather than a single %v dump, since a mismatch usually lives in
// one component's internal range fields.
func TestJoinProducesExpectedVector(t *testing.T) {
	width := 8
	a := New(
		interval.FromConstant(bignum.FromUint64(width, 1)),
		bitfield.FromConstant(bignum.FromUint64(width, 1)),
	)
	b := New(
		interval.FromConstant(bignum.FromUint64(width, 2)),
		bitfield.FromConstant(bignum.FromUint64(width, 2)),
	)

	got := a.Join(b)
	want := New(
		interval.FromRange(bignum.FromUint64(width, 1), bignum.FromUint64(width, 2)),
		bitfield.FromConstant(bignum.FromUint64(width, 1)).Join(bitfield.FromConstant(bignum.FromUint64(width, 2))),
	)

	if !got.At(0).Equal(want.At(0)) || !got.At(1).Equal(want.At(1)) {
		t.Errorf("joined vector differs from expected:\n%s", pretty.Diff(want, got))
	}
}

var _ domain.Value = interval.Interval{}
