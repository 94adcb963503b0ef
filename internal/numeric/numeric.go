// Package numeric holds small generic arithmetic helpers shared by puzzle units.
package numeric

import "golang.org/x/exp/constraints"

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sum returns the sum of xs.
func Sum[T constraints.Integer | constraints.Float](xs ...T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Product returns the product of xs; the empty product is 1.
func Product[T constraints.Integer | constraints.Float](xs ...T) T {
	total := T(1)
	for _, x := range xs {
		total *= x
	}
	return total
}
