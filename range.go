package geom

import "math"

// Float covers the scalar types a Range can hold.
type Float interface {
	~float32 | ~float64
}

// Range is a closed scalar interval used for min/max accumulation. The
// canonical empty interval has Max < Min; the zero value of Range is the
// degenerate interval [0, 0], so use EmptyRange when accumulating.
type Range[T Float] struct {
	Min T
	Max T
}

// EmptyRange returns the interval that contains nothing. Any Extend call
// snaps both endpoints to the extended value.
func EmptyRange[T Float]() Range[T] {
	return Range[T]{Min: T(math.Inf(1)), Max: T(math.Inf(-1))}
}

// NewRange returns the interval [min, max].
func NewRange[T Float](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// IsEmpty reports whether the interval contains no values.
func (r Range[T]) IsEmpty() bool {
	return r.Max < r.Min
}

// Extend grows the interval to include val.
func (r *Range[T]) Extend(val T) {
	if val < r.Min {
		r.Min = val
	}
	if val > r.Max {
		r.Max = val
	}
}

// Intersect returns the overlap of the two intervals. Disjoint inputs
// produce an empty result, as does intersecting anything with an empty
// interval.
func (r Range[T]) Intersect(other Range[T]) Range[T] {
	out := r
	if other.Min > out.Min {
		out.Min = other.Min
	}
	if other.Max < out.Max {
		out.Max = other.Max
	}
	return out
}

// Offset shifts both endpoints by val.
func (r Range[T]) Offset(val T) Range[T] {
	return Range[T]{Min: r.Min + val, Max: r.Max + val}
}

// Normalize maps input to [0, 1] across the interval. Undefined for an
// empty or single-point interval.
func (r Range[T]) Normalize(input T) T {
	return (input - r.Min) / (r.Max - r.Min)
}
