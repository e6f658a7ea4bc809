package math

import "golang.org/x/exp/constraints"

// Number covers the value types the arithmetic containers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var zero T
	return zero
}
