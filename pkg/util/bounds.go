package util

import "golang.org/x/exp/constraints"

// Bounds returns the smallest and largest values in vals. vals must be
// non-empty.
func Bounds[T constraints.Ordered](vals []T) (lo, hi T) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
