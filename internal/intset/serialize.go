package intset

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/sentra-lang/canalgo/internal/bignum"
)

// String renders the enumeration grammar:
//   "enumeration" (" top" | " empty" | (\n "    " decimal)+)
func (v Set) String() string {
	if v.top {
		return "enumeration top"
	}
	if v.IsBottom() {
		return "enumeration empty"
	}
	var sb strings.Builder
	sb.WriteString("enumeration")
	for _, x := range v.values {
		sb.WriteString("\n    ")
		sb.WriteString(x.UnsignedString())
	}
	return sb.String()
}

func (v Set) MatchesString(text string) (bool, string) {
	want := v.String()
	if text == want {
		return true, ""
	}
	return false, fmt.Sprintf("expected %q, got %q", want, text)
}

// ParseSet parses String()'s output back into a Set.
func ParseSet(width, threshold int, text string) (Set, error) {
	const prefix = "enumeration"
	if !strings.HasPrefix(text, prefix) {
		return Set{}, fmt.Errorf("missing %q prefix in %q", prefix, text)
	}
	rest := text[len(prefix):]
	switch {
	case rest == " top":
		return Top(width, threshold), nil
	case rest == " empty":
		return Bottom(width, threshold), nil
	}
	lines := strings.Split(rest, "\n")
	result := Bottom(width, threshold)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, ok := new(big.Int).SetString(line, 10)
		if !ok {
			return Set{}, fmt.Errorf("malformed enumeration member %q", line)
		}
		result = result.insert(bignum.FromBigInt(width, n))
	}
	return result, nil
}
