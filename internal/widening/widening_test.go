package widening

import (
	"testing"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/bitfield"
	"github.com/sentra-lang/canalgo/internal/interval"
	"github.com/sentra-lang/canalgo/internal/intset"
)

// TestWideningAtLoopHead joins [0,0] with [0,k] repeatedly; the 4th join
// (threshold 3) should widen the upper bound to the width's maximum
// instead of tracking k precisely.
func TestWideningAtLoopHead(t *testing.T) {
	width := 32
	m := New(3)
	point := NewPoint()

	cur := interval.FromConstant(bignum.FromUint64(width, 0))
	for i := 1; i <= 4; i++ {
		next := interval.FromRange(bignum.FromUint64(width, 0), bignum.FromUint64(width, uint64(i)))
		cur = m.Join(point, "loop-counter", cur, next).(interval.Interval)
	}

	_, hi, ok := unsignedBounds(cur)
	if !ok {
		t.Fatal("expected a concrete unsigned range after widening")
	}
	maxU := bignum.MaxUnsigned(width)
	if hi.Unsigned().Cmp(maxU.Unsigned()) != 0 {
		t.Errorf("after widening, unsigned hi = %v, want max unsigned %v", hi, maxU)
	}
}

func unsignedBounds(v interval.Interval) (lo, hi bignum.APInt, ok bool) {
	r := v.Range()
	if r.Top || r.Bottom || r.UnsignedHi == nil {
		return bignum.APInt{}, bignum.APInt{}, false
	}
	return bignum.FromBigInt(v.Width(), r.UnsignedLo), bignum.FromBigInt(v.Width(), r.UnsignedHi), true
}

func TestWideningBelowThresholdIsPlainJoin(t *testing.T) {
	width := 32
	m := New(3)
	point := NewPoint()

	a := interval.FromConstant(bignum.FromUint64(width, 0))
	b := interval.FromRange(bignum.FromUint64(width, 0), bignum.FromUint64(width, 5))
	result := m.Join(point, "x", a, b).(interval.Interval)
	want := a.Join(b)
	if !result.Equal(want) {
		t.Errorf("join below threshold = %v, want plain join %v", result, want)
	}
}

func TestWideningCollapsesSetAndBitfieldToTop(t *testing.T) {
	width := 8
	m := New(1)
	point := NewPoint()

	a := intset.FromValues(width, intset.DefaultThreshold, []bignum.APInt{bignum.FromUint64(width, 1)})
	b := intset.FromValues(width, intset.DefaultThreshold, []bignum.APInt{bignum.FromUint64(width, 2)})
	m.Join(point, "s", a, b) // first join still plain, consumes the threshold-1 budget
	result := m.Join(point, "s", a, b)
	if !result.IsTop() {
		t.Errorf("widened set = %v, want top", result)
	}

	bfA := bitfield.FromConstant(bignum.FromUint64(width, 1))
	bfB := bitfield.FromConstant(bignum.FromUint64(width, 2))
	m.Join(point, "bf", bfA, bfB)
	bfResult := m.Join(point, "bf", bfA, bfB)
	if !bfResult.IsTop() {
		t.Errorf("widened bitfield = %v, want top", bfResult)
	}
}

// Two distinct value IDs at the same widening point must keep separate
// counters: exhausting "x"'s threshold must not cause "y"'s very first
// join to widen too.
func TestDistinctValueIDsWidenIndependently(t *testing.T) {
	width := 32
	m := New(1)
	point := NewPoint()

	a := interval.FromConstant(bignum.FromUint64(width, 0))
	b := interval.FromRange(bignum.FromUint64(width, 0), bignum.FromUint64(width, 1))

	m.Join(point, "x", a, b) // consumes x's threshold-1 budget
	xResult := m.Join(point, "x", a, b).(interval.Interval)
	if !xResult.Equal(interval.Widen(a, b)) {
		t.Errorf("x's second join = %v, want widened %v", xResult, interval.Widen(a, b))
	}

	yResult := m.Join(point, "y", a, b).(interval.Interval)
	if !yResult.Equal(a.Join(b).(interval.Interval)) {
		t.Errorf("y's first join = %v, want plain join %v", yResult, a.Join(b))
	}
}
