package interval

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sentra-lang/canalgo/internal/bignum"
)

// String renders the grammar:
//   "integerInterval { signed " rangeOrState " unsigned " rangeOrState " }"
// where rangeOrState is "empty", "top", or "lo to hi" rendered under the
// side's own ordering (signed side uses SignedString, unsigned side uses
// UnsignedString). Both sides are always present because this domain
// carries two independent ranges rather than one; a single lo-to-hi
// rendering would lose whichever side it dropped.
func (v Interval) String() string {
	var sb strings.Builder
	sb.WriteString("integerInterval { signed ")
	sb.WriteString(renderSide(v.signed, true))
	sb.WriteString(" unsigned ")
	sb.WriteString(renderSide(v.unsigned, false))
	sb.WriteString(" }")
	return sb.String()
}

func renderSide(s sidedRange, signed bool) string {
	if s.isBottom() {
		return "empty"
	}
	if s.isTop() {
		return "top"
	}
	return fmt.Sprintf("%s to %s", endpointString(s.lo, signed), endpointString(s.hi, signed))
}

func endpointString(v bignum.APInt, signed bool) string {
	if signed {
		return v.SignedString()
	}
	return v.UnsignedString()
}

// MatchesString is the inverse of String(): it reports whether text is the
// canonical rendering of v, with a rationale describing any mismatch.
func (v Interval) MatchesString(text string) (bool, string) {
	want := v.String()
	if text == want {
		return true, ""
	}
	return false, fmt.Sprintf("expected %q, got %q", want, text)
}

// ParseInterval parses String()'s output back into an Interval, for tests
// that round-trip the canonical grammar.
func ParseInterval(width int, text string) (Interval, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "integerInterval {")
	text = strings.TrimSuffix(text, "}")
	text = strings.TrimSpace(text)

	text = strings.TrimPrefix(text, "signed ")
	unsignedIdx := strings.Index(text, " unsigned ")
	if unsignedIdx < 0 {
		return Interval{}, fmt.Errorf("missing unsigned side in %q", text)
	}
	signedText := text[:unsignedIdx]
	unsignedText := text[unsignedIdx+len(" unsigned "):]

	signed, err := parseSide(width, true, signedText)
	if err != nil {
		return Interval{}, err
	}
	unsigned, err := parseSide(width, false, unsignedText)
	if err != nil {
		return Interval{}, err
	}
	return Interval{width: width, signed: signed, unsigned: unsigned}, nil
}

func parseSide(width int, signed bool, text string) (sidedRange, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "empty":
		return bottomSide(), nil
	case "top":
		return topSide(width, signed), nil
	}
	parts := strings.SplitN(text, " to ", 2)
	if len(parts) != 2 {
		return sidedRange{}, fmt.Errorf("malformed range fragment %q", text)
	}
	lo, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
	if !ok {
		return sidedRange{}, fmt.Errorf("malformed endpoint %q", parts[0])
	}
	hi, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
	if !ok {
		return sidedRange{}, fmt.Errorf("malformed endpoint %q", parts[1])
	}
	return rangeSide(bignum.FromBigInt(width, lo), bignum.FromBigInt(width, hi)), nil
}
