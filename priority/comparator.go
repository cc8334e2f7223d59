package priority

import "cmp"

// Comparator decides the relative priority of two elements.
type Comparator[T any] interface {
	// Outranks returns true if a must sit closer to the root than b.
	// It must be a strict weak ordering and must not depend on anything
	// but its arguments.
	Outranks(a, b T) bool
}

// OutranksFunc is a function type that implements Comparator.
type OutranksFunc[T any] func(a, b T) bool

// Outranks calls the function.
func (f OutranksFunc[T]) Outranks(a, b T) bool {
	return f(a, b)
}

// Less returns a comparator under which smaller values come first.
func Less[T cmp.Ordered]() Comparator[T] {
	return OutranksFunc[T](cmp.Less[T])
}

// Greater returns a comparator under which larger values come first.
func Greater[T cmp.Ordered]() Comparator[T] {
	return OutranksFunc[T](func(a, b T) bool {
		return cmp.Less(b, a)
	})
}

// Reverse flips the order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return OutranksFunc[T](func(a, b T) bool {
		return c.Outranks(b, a)
	})
}

// NewMin creates a queue that pops the smallest value first.
func NewMin[T cmp.Ordered](opts ...Option) *Queue[T] {
	return New(Less[T](), opts...)
}

// NewMax creates a queue that pops the largest value first.
func NewMax[T cmp.Ordered](opts ...Option) *Queue[T] {
	return New(Greater[T](), opts...)
}
