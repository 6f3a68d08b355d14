package intset

import (
	"testing"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func vals(width int, xs ...uint64) Set {
	var apints []bignum.APInt
	for _, x := range xs {
		apints = append(apints, bignum.FromUint64(width, x))
	}
	return FromValues(width, DefaultThreshold, apints)
}

func TestJoinLatticeProperties(t *testing.T) {
	width := 8
	a := vals(width, 3)
	b := vals(width, 5)
	c := vals(width, 9)
	bottom := Bottom(width, DefaultThreshold)
	top := Top(width, DefaultThreshold)

	if !a.Join(b).(Set).Equal(b.Join(a).(Set)) {
		t.Error("join not commutative")
	}
	ab := a.Join(b).(Set)
	if !ab.Join(c).(Set).Equal(a.Join(b.Join(c).(Set)).(Set)) {
		t.Error("join not associative")
	}
	if !a.Join(a).(Set).Equal(a) {
		t.Error("join not idempotent")
	}
	if !a.Join(bottom).(Set).Equal(a) {
		t.Error("a.join(bottom) != a")
	}
	if !a.Join(top).(Set).Equal(top) {
		t.Error("a.join(top) != top")
	}
}

func TestMeetLatticeProperties(t *testing.T) {
	width := 8
	a := vals(width, 3, 5)
	b := vals(width, 5, 9)
	top := Top(width, DefaultThreshold)
	bottom := Bottom(width, DefaultThreshold)

	if !a.Meet(b).(Set).Equal(b.Meet(a).(Set)) {
		t.Error("meet not commutative")
	}
	if !a.Meet(a).(Set).Equal(a) {
		t.Error("meet not idempotent")
	}
	if !a.Meet(top).(Set).Equal(a) {
		t.Error("a.meet(top) != a")
	}
	if !a.Meet(bottom).(Set).Equal(bottom) {
		t.Error("a.meet(bottom) != bottom")
	}
}

func TestThresholdCollapsesToTop(t *testing.T) {
	width := 32
	threshold := 4
	var xs []bignum.APInt
	for i := uint64(0); i < 10; i++ {
		xs = append(xs, bignum.FromUint64(width, i))
	}
	s := FromValues(width, threshold, xs)
	if !s.IsTop() {
		t.Errorf("set exceeding threshold should collapse to top, got %v", s)
	}
}

func TestCardinalityBound(t *testing.T) {
	width := 32
	threshold := 10
	var xs []bignum.APInt
	for i := uint64(0); i < 5; i++ {
		xs = append(xs, bignum.FromUint64(width, i))
	}
	s := FromValues(width, threshold, xs)
	if !s.top && len(s.values) > threshold {
		t.Errorf("|values| = %d exceeds threshold %d", len(s.values), threshold)
	}
}

func TestICmpULTScenario(t *testing.T) {
	width := 32
	a := vals(width, 0, 2)
	b := vals(width, 1, 3)

	result := a.ICmp(predicate.ULT, b).(Set)
	if !result.top {
		t.Errorf("icmp ULT({0,2},{1,3}) = %v, want top", result)
	}

	b2 := vals(width, 5, 7)
	result2 := a.ICmp(predicate.ULT, b2).(Set)
	c, ok := result2.AsConstant()
	if !ok || c.Unsigned().Uint64() != 1 {
		t.Errorf("icmp ULT({0,2},{5,7}) = %v, want definite true", result2)
	}
}

func TestStringRoundTrip(t *testing.T) {
	width := 16
	values := []Set{
		Bottom(width, DefaultThreshold),
		Top(width, DefaultThreshold),
		vals(width, 1, 2, 3),
	}
	for _, v := range values {
		text := v.String()
		ok, reason := v.MatchesString(text)
		if !ok {
			t.Errorf("round trip failed for %v: %s", v, reason)
		}
		parsed, err := ParseSet(width, DefaultThreshold, text)
		if err != nil {
			t.Fatalf("ParseSet(%q) failed: %v", text, err)
		}
		if !parsed.Equal(v) {
			t.Errorf("ParseSet(%q) = %v, want %v", text, parsed, v)
		}
	}
}

func TestCartesianArithmetic(t *testing.T) {
	width := 8
	a := vals(width, 2, 3)
	b := vals(width, 10, 20)
	result := a.Add(b).(Set)
	want := vals(width, 12, 13, 22, 23)
	if !result.Equal(want) {
		t.Errorf("add({2,3},{10,20}) = %v, want %v", result, want)
	}
}

func TestDivisionBySetContainingZero(t *testing.T) {
	width := 8
	a := vals(width, 10)
	b := vals(width, 0, 5)
	result := a.UDiv(b).(Set)
	if !result.top {
		t.Errorf("udiv by a set containing 0 should collapse to top, got %v", result)
	}
}

var _ domain.IntValue = Set{}
