package domain

import "golang.org/x/exp/constraints"

// Max and Min are small generic helpers for picking the bigger/smaller of
// two ordered values; the product vector's accuracy walk
// (Vector.WeakestComponent) uses Min.
func Max[T constraints.Ordered](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a <= b {
		return a
	}
	return b
}
