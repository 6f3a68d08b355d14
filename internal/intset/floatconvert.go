package intset

import "github.com/sentra-lang/canalgo/internal/domain"

// FPToUI and FPToSI over-approximate to top unconditionally: the set
// domain makes no attempt at precise float->int membership.
func FPToUI(f domain.FloatValue, toWidth, threshold int) Set {
	_, _, _, bottom, _ := f.Bounds()
	if bottom {
		return Bottom(toWidth, threshold)
	}
	return Top(toWidth, threshold)
}

func FPToSI(f domain.FloatValue, toWidth, threshold int) Set {
	_, _, _, bottom, _ := f.Bounds()
	if bottom {
		return Bottom(toWidth, threshold)
	}
	return Top(toWidth, threshold)
}
