package deblock

import "golang.org/x/exp/constraints"

// Clip3 clamps v to the inclusive range [lo, hi].
func Clip3[T constraints.Integer](lo, hi, v T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
