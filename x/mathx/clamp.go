package mathx

import "golang.org/x/exp/constraints"

// Clamp pins v into the closed range spanned by a and b, in either order.
func Clamp[T constraints.Ordered](v, a, b T) T {
	lo, hi := a, b
	if b < a {
		lo, hi = b, a
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Inside reports lo < v && v < hi (both bounds exclusive).
func Inside[T constraints.Ordered](v, lo, hi T) bool {
	return lo < v && v < hi
}

// Dist is |a-b| without leaving T, so it is safe for unsigned types.
func Dist[T constraints.Integer](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
