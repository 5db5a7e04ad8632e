package sequences

import (
	"golang.org/x/exp/constraints"

	"github.com/adamluzsi/streams"
)

// Number is the constraint for the types that have a zero value and support the + operator.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum consumes the sequence to completion and adds up its values, starting from the type's zero value.
// An empty sequence yields the zero value.
// Overflow behaviour is the one the value type's + operator defines,
// which for the fixed-width integer types means wrapping around.
func Sum[N Number](s streams.Sequence[N]) (N, error) {
	var zero N
	return Fold(s, zero, func(sum N, v N) N {
		return sum + v
	})
}

// SumOf sums a numeric projection of the sequence's values.
// It allows summing when the sequence yields a view on the number rather than the number itself,
// such as a struct field or a pointer to the value,
// and it produces the same result the owned values would.
func SumOf[T any, N Number](s streams.Sequence[T], fn func(T) N) (N, error) {
	var zero N
	return Fold(s, zero, func(sum N, v T) N {
		return sum + fn(v)
	})
}
