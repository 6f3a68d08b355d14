package floatdomain

import (
	"testing"

	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bignum"
	"github.com/sentra-lang/canalgo/internal/domain"
	"github.com/sentra-lang/canalgo/internal/predicate"
)

func mk(lo, hi float64) FloatInterval {
	return FromRange(bignum.FromFloat64(absenv.Double, lo), bignum.FromFloat64(absenv.Double, hi))
}

func TestJoinLatticeProperties(t *testing.T) {
	a := mk(1, 2)
	b := mk(3, 4)
	bottom := Bottom(absenv.Double)
	top := Top(absenv.Double)

	if !a.Join(b).(FloatInterval).Equal(b.Join(a).(FloatInterval)) {
		t.Error("join not commutative")
	}
	if !a.Join(a).(FloatInterval).Equal(a) {
		t.Error("join not idempotent")
	}
	if !a.Join(bottom).(FloatInterval).Equal(a) {
		t.Error("a.join(bottom) != a")
	}
	if !a.Join(top).(FloatInterval).Equal(top) {
		t.Error("a.join(top) != top")
	}
}

func TestMeetLatticeProperties(t *testing.T) {
	a := mk(1, 5)
	b := mk(3, 9)
	top := Top(absenv.Double)
	bottom := Bottom(absenv.Double)

	if !a.Meet(b).(FloatInterval).Equal(b.Meet(a).(FloatInterval)) {
		t.Error("meet not commutative")
	}
	if !a.Meet(top).(FloatInterval).Equal(a) {
		t.Error("a.meet(top) != a")
	}
	if !a.Meet(bottom).(FloatInterval).Equal(bottom) {
		t.Error("a.meet(bottom) != bottom")
	}
	disjoint := mk(100, 200)
	if !a.Meet(disjoint).(FloatInterval).Equal(bottom) {
		t.Error("disjoint meet should be bottom")
	}
}

func TestAccuracyBounds(t *testing.T) {
	if Top(absenv.Double).Accuracy() != 0.0 {
		t.Error("top accuracy should be 0")
	}
	if Bottom(absenv.Double).Accuracy() != 1.0 {
		t.Error("bottom accuracy should be 1")
	}
	c := mk(1, 1)
	if acc := c.Accuracy(); acc < 0.99 {
		t.Errorf("singleton accuracy = %v, want close to 1", acc)
	}
}

// fdiv([1.0,2.0], [-1.0,0.0]) = [-infinity, -1.0].
func TestFDivDivisorTouchesZeroFromBelow(t *testing.T) {
	a := mk(1.0, 2.0)
	b := mk(-1.0, 0.0)
	result := a.FDiv(b).(FloatInterval)
	want := FromRangeMayBeNaN(bignum.NegInf(absenv.Double), bignum.FromFloat64(absenv.Double, -1.0), result.mayBeNaN)
	if !result.Equal(want) {
		t.Errorf("fdiv([1,2],[-1,0]) = %v, want %v", result, want)
	}
}

func TestFDivDivisorSpansZero(t *testing.T) {
	a := mk(-1.0, 2.0) // dividend can be zero too, so 0/0 is possible
	b := mk(-1.0, 1.0)
	result := a.FDiv(b).(FloatInterval)
	if !result.mayBeNaN {
		t.Error("fdiv with both operands possibly zero should mark mayBeNaN")
	}
	lo, hi := result.lo.Float64(), result.hi.Float64()
	if lo != negInf64() || hi != posInf64() {
		t.Errorf("fdiv([-1,2],[-1,1]) = [%v,%v], want [-inf,+inf]", lo, hi)
	}
}

func negInf64() float64 { var z float64; return -1 / z }
func posInf64() float64 { var z float64; return 1 / z }

func TestFAddCornerMerge(t *testing.T) {
	a := mk(1, 2)
	b := mk(10, 20)
	result := a.FAdd(b).(FloatInterval)
	want := mk(11, 22)
	if !result.Equal(want) {
		t.Errorf("fadd([1,2],[10,20]) = %v, want %v", result, want)
	}
}

func TestStringRoundTrip(t *testing.T) {
	values := []FloatInterval{
		Bottom(absenv.Double),
		Top(absenv.Double),
		mk(1, 2),
	}
	for _, v := range values {
		text := v.String()
		ok, reason := v.MatchesString(text)
		if !ok {
			t.Errorf("round trip failed for %v: %s", v, reason)
		}
		parsed, err := ParseFloatInterval(absenv.Double, text)
		if err != nil {
			t.Fatalf("ParseFloatInterval(%q) failed: %v", text, err)
		}
		// parsed's mayBeNaN is conservative so compare ranges, not Equal.
		rangeDiffers := false
		if !v.empty && !parsed.empty {
			loCmp, _ := bignum.Cmp(parsed.lo, v.lo)
			hiCmp, _ := bignum.Cmp(parsed.hi, v.hi)
			rangeDiffers = loCmp != 0 || hiCmp != 0
		}
		if parsed.empty != v.empty || rangeDiffers {
			t.Errorf("ParseFloatInterval(%q) = %v, want range of %v", text, parsed, v)
		}
	}
}

func TestFCmpOrderedShortCircuitsOnNaN(t *testing.T) {
	a := Top(absenv.Double) // mayBeNaN true
	b := mk(1, 2)
	if got := a.FCmp(predicate.FCMP_OEQ, b); got != 2 {
		t.Errorf("FCmp(OEQ) with NaN-possible operand = %d, want 2 (top)", got)
	}
	if got := a.FCmp(predicate.FCMP_UNO, b); got != 1 {
		t.Errorf("FCmp(UNO) = %d, want 1 (short-circuit)", got)
	}
	if got := a.FCmp(predicate.FCMP_TRUE, b); got != 1 {
		t.Errorf("FCmp(TRUE) = %d, want 1", got)
	}
	if got := a.FCmp(predicate.FCMP_FALSE, b); got != 0 {
		t.Errorf("FCmp(FALSE) = %d, want 0", got)
	}
}

func TestFCmpDisjointRanges(t *testing.T) {
	a := mk(1, 2)
	b := mk(5, 6)
	if got := a.FCmp(predicate.FCMP_OLT, b); got != 1 {
		t.Errorf("FCmp(OLT) on disjoint ranges = %d, want 1", got)
	}
	if got := a.FCmp(predicate.FCMP_OGT, b); got != 0 {
		t.Errorf("FCmp(OGT) on disjoint ranges = %d, want 0", got)
	}
}

func TestFPTruncFPExt(t *testing.T) {
	v := mk(1.5, 2.5)
	trunc := v.FPTrunc(int(absenv.Single)).(FloatInterval)
	if trunc.sem != absenv.Single {
		t.Errorf("FPTrunc semantics = %v, want Single", trunc.sem)
	}
	ext := trunc.FPExt(int(absenv.Double)).(FloatInterval)
	if ext.sem != absenv.Double {
		t.Errorf("FPExt semantics = %v, want Double", ext.sem)
	}
}

var _ domain.FloatValue = FloatInterval{}
var _ domain.Refinable = FloatInterval{}
