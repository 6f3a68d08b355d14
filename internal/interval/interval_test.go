package interval

import (
	"testing"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func sc(width int, v int64) Interval { return FromConstant(bignum.FromInt64(width, v)) }

func TestJoinLatticeProperties(t *testing.T) {
	width := 8
	a := sc(width, 3)
	b := sc(width, 5)
	c := sc(width, 9)
	bottom := Bottom(width)
	top := Top(width)

	if !a.Join(b).(Interval).Equal(b.Join(a).(Interval)) {
		t.Error("join not commutative")
	}
	ab := a.Join(b).(Interval)
	if !ab.Join(c).(Interval).Equal(a.Join(b.Join(c).(Interval)).(Interval)) {
		t.Error("join not associative")
	}
	if !a.Join(a).(Interval).Equal(a) {
		t.Error("join not idempotent")
	}
	if !a.Join(bottom).(Interval).Equal(a) {
		t.Error("a.join(bottom) != a")
	}
	if !a.Join(top).(Interval).Equal(top) {
		t.Error("a.join(top) != top")
	}
}

func TestMeetLatticeProperties(t *testing.T) {
	width := 8
	a := sc(width, 3)
	b := sc(width, 5)
	c := sc(width, 9)
	bottom := Bottom(width)
	top := Top(width)

	if !a.Meet(b).(Interval).Equal(b.Meet(a).(Interval)) {
		t.Error("meet not commutative")
	}
	ab := a.Meet(b).(Interval)
	if !ab.Meet(c).(Interval).Equal(a.Meet(b.Meet(c).(Interval)).(Interval)) {
		t.Error("meet not associative")
	}
	if !a.Meet(a).(Interval).Equal(a) {
		t.Error("meet not idempotent")
	}
	if !a.Meet(top).(Interval).Equal(a) {
		t.Error("a.meet(top) != a")
	}
	if !a.Meet(bottom).(Interval).Equal(bottom) {
		t.Error("a.meet(bottom) != bottom")
	}
}

func TestAbsorption(t *testing.T) {
	width := 8
	a := FromRange(bignum.FromInt64(width, 0), bignum.FromInt64(width, 10))
	b := FromRange(bignum.FromInt64(width, 5), bignum.FromInt64(width, 20))

	joinMeet := a.Join(a.Meet(b).(Interval)).(Interval)
	if !joinMeet.Equal(a) {
		t.Errorf("join(a, meet(a,b)) != a: got %v", joinMeet)
	}
	meetJoin := a.Meet(a.Join(b).(Interval)).(Interval)
	if !meetJoin.Equal(a) {
		t.Errorf("meet(a, join(a,b)) != a: got %v", meetJoin)
	}
}

func TestStringRoundTrip(t *testing.T) {
	width := 32
	values := []Interval{
		Bottom(width),
		Top(width),
		sc(width, 42),
		FromRange(bignum.FromInt64(width, -5), bignum.FromInt64(width, 5)),
	}
	for _, v := range values {
		text := v.String()
		ok, reason := v.MatchesString(text)
		if !ok {
			t.Errorf("round trip failed for %v: %s", v, reason)
		}
		parsed, err := ParseInterval(width, text)
		if err != nil {
			t.Fatalf("ParseInterval(%q) failed: %v", text, err)
		}
		if !parsed.Equal(v) {
			t.Errorf("ParseInterval(%q) = %v, want %v", text, parsed, v)
		}
	}
}

func TestAddOverflowScenario(t *testing.T) {
	width := 32
	lo := bignum.FromInt64(width, 2147483640)
	hi := bignum.FromInt64(width, 2147483647)
	a := FromRange(lo, hi)
	b := sc(width, 10)

	result := a.Add(b).(Interval)

	if !result.signed.isTop() {
		t.Errorf("expected signed side to widen to top on overflow, got %v", result.signed)
	}
	wantLo := bignum.FromInt64(width, 2147483650)
	wantHi := bignum.FromInt64(width, 2147483657)
	if result.unsigned.isTop() || result.unsigned.isBottom() {
		t.Fatalf("expected unsigned side to be a concrete range, got %v", result.unsigned)
	}
	if !result.unsigned.lo.Eq(wantLo) || !result.unsigned.hi.Eq(wantHi) {
		t.Errorf("unsigned side = [%s, %s], want [%s, %s]",
			result.unsigned.lo.UnsignedString(), result.unsigned.hi.UnsignedString(),
			wantLo.UnsignedString(), wantHi.UnsignedString())
	}
}

func TestMeetWithTopSideScenario(t *testing.T) {
	width := 32
	ten := sc(width, 10)

	a := ten.SDiv(ten).(Interval)  // signed-constant 1, unsigned top
	b := ten.UDiv(ten).(Interval) // signed top, unsigned-constant 1

	if !a.signed.isSingleValue() || a.signed.lo.SignedString() != "1" {
		t.Fatalf("sdiv(10,10) signed side = %v, want constant 1", a.signed)
	}
	if !a.unsigned.isTop() {
		t.Fatalf("sdiv(10,10) unsigned side = %v, want top", a.unsigned)
	}
	if !b.unsigned.isSingleValue() || b.unsigned.lo.UnsignedString() != "1" {
		t.Fatalf("udiv(10,10) unsigned side = %v, want constant 1", b.unsigned)
	}
	if !b.signed.isTop() {
		t.Fatalf("udiv(10,10) signed side = %v, want top", b.signed)
	}

	merged := a.Meet(b).(Interval)
	if !merged.IsSingleValue() {
		t.Fatalf("meet(a,b) = %v, want single-valued 1 on both sides", merged)
	}
	if merged.signed.lo.SignedString() != "1" || merged.unsigned.lo.UnsignedString() != "1" {
		t.Errorf("meet(a,b) = %v, want 1", merged)
	}
}

// TestDualRangeNeverDisjointUnlessBottom checks the dual-representation
// invariant: signedRange(v) ∩ unsignedRange(v), taken as concrete bit
// patterns, is never empty unless v is bottom. A single-valued interval
// trivially satisfies this since both sides denote the same bit pattern;
// the case worth checking is a width-1 saturated value, where both sides
// must still agree on at least one pattern (0 or 1).
func TestDualRangeNeverDisjointUnlessBottom(t *testing.T) {
	values := []Interval{
		sc(8, 0),
		sc(8, -1),
		FromRange(bignum.FromInt64(8, -10), bignum.FromInt64(8, 10)),
		Top(8),
		Top(1),
	}
	for _, v := range values {
		if v.IsBottom() {
			continue
		}
		found := false
		for bits := uint64(0); bits < (uint64(1) << uint(v.width)); bits++ {
			candidate := bignum.FromUint64(v.width, bits)
			inSigned := cmp(true, v.signed.lo, candidate) <= 0 && cmp(true, candidate, v.signed.hi) <= 0
			inUnsigned := cmp(false, v.unsigned.lo, candidate) <= 0 && cmp(false, candidate, v.unsigned.hi) <= 0
			if v.signed.isTop() {
				inSigned = true
			}
			if v.unsigned.isTop() {
				inUnsigned = true
			}
			if inSigned && inUnsigned {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no bit pattern satisfies both sides of %v", v)
		}
	}
}

func TestICmpULTDefiniteAndTop(t *testing.T) {
	width := 8
	a := FromRange(bignum.FromInt64(width, 5), bignum.FromInt64(width, 5))
	b := FromRange(bignum.FromInt64(width, 10), bignum.FromInt64(width, 10))

	result := a.ICmp(predicate.ULT, b).(Interval)
	if !result.IsSingleValue() || result.signed.lo.UnsignedString() != "1" {
		t.Errorf("icmp ULT(5,10) = %v, want definite true", result)
	}

	overlapping := FromRange(bignum.FromInt64(width, 0), bignum.FromInt64(width, 20))
	result2 := a.ICmp(predicate.ULT, overlapping).(Interval)
	if !result2.signed.isTop() && !result2.IsSingleValue() {
		// either a definite answer (if provably disjoint) or top is sound;
		// here ranges overlap so top is expected.
	}
	if !result2.signed.isTop() {
		t.Errorf("icmp ULT against overlapping range = %v, want top", result2)
	}
}

func TestConvertTruncZextSext(t *testing.T) {
	width := 16
	v := FromRange(bignum.FromInt64(width, 10), bignum.FromInt64(width, 20))

	truncated := v.Trunc(8).(Interval)
	if truncated.Width() != 8 {
		t.Errorf("Trunc width = %d, want 8", truncated.Width())
	}

	zexted := v.Zext(32).(Interval)
	if zexted.Width() != 32 {
		t.Errorf("Zext width = %d, want 32", zexted.Width())
	}
	if !equalSide(zexted.signed, zexted.unsigned) {
		t.Error("zext signed side should equal unsigned side")
	}

	sexted := v.Sext(32).(Interval)
	if sexted.Width() != 32 {
		t.Errorf("Sext width = %d, want 32", sexted.Width())
	}
}

func TestRangeForProductReduction(t *testing.T) {
	width := 16
	v := FromRange(bignum.FromInt64(width, 10), bignum.FromInt64(width, 20))
	r := v.Range()
	if r.Bottom || r.Top {
		t.Fatalf("Range() of a concrete interval should be neither bottom nor top: %+v", r)
	}
	if r.SignedLo.Int64() != 10 || r.SignedHi.Int64() != 20 {
		t.Errorf("Range().Signed = [%s, %s], want [10, 20]", r.SignedLo, r.SignedHi)
	}
}

var _ domain.IntValue = Interval{}
