package bitfield

import (
	"testing"

	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func constVal(width int, v uint64) Bitfield { return FromConstant(bignum.FromUint64(width, v)) }

func TestJoinLatticeProperties(t *testing.T) {
	width := 8
	a := constVal(width, 3)
	b := constVal(width, 5)
	c := constVal(width, 9)
	bottom := Bottom(width)
	top := Top(width)

	if !a.Join(b).(Bitfield).Equal(b.Join(a).(Bitfield)) {
		t.Error("join not commutative")
	}
	ab := a.Join(b).(Bitfield)
	if !ab.Join(c).(Bitfield).Equal(a.Join(b.Join(c).(Bitfield)).(Bitfield)) {
		t.Error("join not associative")
	}
	if !a.Join(a).(Bitfield).Equal(a) {
		t.Error("join not idempotent")
	}
	if !a.Join(bottom).(Bitfield).Equal(a) {
		t.Error("a.join(bottom) != a")
	}
	if !a.Join(top).(Bitfield).Equal(top) {
		t.Error("a.join(top) != top")
	}
}

func TestMeetLatticeProperties(t *testing.T) {
	width := 8
	a := constVal(width, 3)
	b := constVal(width, 5)
	top := Top(width)
	bottom := Bottom(width)

	if !a.Meet(b).(Bitfield).Equal(b.Meet(a).(Bitfield)) {
		t.Error("meet not commutative")
	}
	if !a.Meet(a).(Bitfield).Equal(a) {
		t.Error("meet not idempotent")
	}
	if !a.Meet(top).(Bitfield).Equal(a) {
		t.Error("a.meet(top) != a")
	}
	if !a.Meet(bottom).(Bitfield).Equal(bottom) {
		t.Error("a.meet(bottom) != bottom")
	}
}

func TestNoImpossibleBitUnlessBottom(t *testing.T) {
	values := []Bitfield{constVal(8, 0), constVal(8, 255), Top(8)}
	for _, v := range values {
		if v.hasImpossibleBit() {
			t.Errorf("%v should have no impossible bit", v)
		}
	}
	if !Bottom(8).hasImpossibleBit() {
		t.Error("Bottom should have an impossible bit")
	}
}

// Bitfield's bitwise and should stay exact where Interval's and has to
// collapse to top.
func TestAndExactScenario(t *testing.T) {
	width := 8
	a := constVal(width, 0b00001111)
	b := constVal(width, 0b11110000)

	result := a.And(b).(Bitfield)
	c, ok := result.AsConstant()
	if !ok {
		t.Fatalf("and(a,b) = %v, want exact constant", result)
	}
	if c.Unsigned().Uint64() != 0 {
		t.Errorf("and(a,b) = %d, want 0", c.Unsigned().Uint64())
	}
}

func TestStringRoundTrip(t *testing.T) {
	width := 8
	values := []Bitfield{
		Bottom(width),
		Top(width),
		constVal(width, 0b00001111),
		constVal(width, 0),
	}
	for _, v := range values {
		text := v.String()
		ok, reason := v.MatchesString(text)
		if !ok {
			t.Errorf("round trip failed for %v: %s", v, reason)
		}
		parsed, err := ParseBitfield(text)
		if err != nil {
			t.Fatalf("ParseBitfield(%q) failed: %v", text, err)
		}
		if !parsed.Equal(v) {
			t.Errorf("ParseBitfield(%q) = %v, want %v", text, parsed, v)
		}
	}
}

func TestShlConstantAmount(t *testing.T) {
	width := 8
	v := constVal(width, 0b00000011)
	amt := constVal(width, 2)
	result := v.Shl(amt).(Bitfield)
	c, ok := result.AsConstant()
	if !ok || c.Unsigned().Uint64() != 0b00001100 {
		t.Errorf("shl(0b011, 2) = %v, want 0b1100", result)
	}
}

func TestICmpEqConstants(t *testing.T) {
	width := 8
	a := constVal(width, 42)
	b := constVal(width, 42)
	c := constVal(width, 7)

	if r := a.ICmp(predicate.EQ, b).(Bitfield); !isDefiniteTrue(r) {
		t.Errorf("icmp eq(42,42) = %v, want definite true", r)
	}
	if r := a.ICmp(predicate.EQ, c).(Bitfield); !isDefiniteFalse(r) {
		t.Errorf("icmp eq(42,7) = %v, want definite false", r)
	}
}

func isDefiniteTrue(v Bitfield) bool {
	c, ok := v.AsConstant()
	return ok && c.Unsigned().Uint64() == 1
}

func isDefiniteFalse(v Bitfield) bool {
	c, ok := v.AsConstant()
	return ok && c.Unsigned().Uint64() == 0
}

var _ domain.IntValue = Bitfield{}
