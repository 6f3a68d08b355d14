package floatdomain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sentra-lang/canalgo/internal/absenv"
	"github.com/sentra-lang/canalgo/internal/bignum"
)

// String renders the canonical float interval grammar:
//
//	"floatInterval " ("empty" | "-infinity to infinity" | (lo " to " hi))
func (v FloatInterval) String() string {
	if v.empty {
		return "floatInterval empty"
	}
	if v.top {
		return "floatInterval -infinity to infinity"
	}
	return fmt.Sprintf("floatInterval %s to %s", v.lo.String(), v.hi.String())
}

func (v FloatInterval) MatchesString(text string) (bool, string) {
	want := v.String()
	if text == want {
		return true, ""
	}
	return false, fmt.Sprintf("expected %q, got %q", want, text)
}

// ParseFloatInterval parses String()'s output back into a FloatInterval.
// The reconstructed value's mayBeNaN flag is conservatively set to true
// unless the text is exactly "floatInterval empty", since the grammar
// carries no NaN-possibility marker of its own.
func ParseFloatInterval(sem absenv.FloatSemantics, text string) (FloatInterval, error) {
	const prefix = "floatInterval "
	if !strings.HasPrefix(text, prefix) {
		return FloatInterval{}, fmt.Errorf("missing %q prefix in %q", prefix, text)
	}
	rest := text[len(prefix):]
	switch rest {
	case "empty":
		return Bottom(sem), nil
	case "-infinity to infinity":
		return Top(sem), nil
	}
	lo, hi, ok := strings.Cut(rest, " to ")
	if !ok {
		return FloatInterval{}, fmt.Errorf("malformed float interval %q", text)
	}
	loVal, err := parseEndpoint(sem, lo)
	if err != nil {
		return FloatInterval{}, err
	}
	hiVal, err := parseEndpoint(sem, hi)
	if err != nil {
		return FloatInterval{}, err
	}
	return FromRangeMayBeNaN(loVal, hiVal, true), nil
}

func parseEndpoint(sem absenv.FloatSemantics, text string) (bignum.APFloat, error) {
	switch text {
	case "infinity":
		return bignum.PosInf(sem), nil
	case "-infinity":
		return bignum.NegInf(sem), nil
	case "nan":
		return bignum.NaNValue(sem), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return bignum.APFloat{}, fmt.Errorf("malformed float endpoint %q: %w", text, err)
	}
	return bignum.FromFloat64(sem, f), nil
}
