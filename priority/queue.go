package priority

import "iter"

// Queue is a binary heap stored in a flat slice.
//
// Slot 0 of items is reserved and never read, so the live elements occupy
// items[1:] and the parent of i is i/2. The element at index 1 is always the
// one that outranks every other live element under the queue's comparator.
//
// A Queue is not safe for concurrent use. See Locked.
type Queue[T any] struct {
	items []T
	count int
	cmp   Comparator[T]
}

// New creates an empty queue ordered by c. It panics if c is nil.
func New[T any](c Comparator[T], opts ...Option) *Queue[T] {
	if c == nil {
		panic("priority: nil comparator")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	items := make([]T, 1, o.capacity+1)
	return &Queue[T]{
		items: items,
		cmp:   c,
	}
}

// NewFunc creates an empty queue ordered by the outranks function.
func NewFunc[T any](outranks func(a, b T) bool, opts ...Option) *Queue[T] {
	if outranks == nil {
		panic("priority: nil comparator")
	}
	return New[T](OutranksFunc[T](outranks), opts...)
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.count
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Push adds value to the queue.
func (q *Queue[T]) Push(value T) {
	q.items = append(q.items, value)
	q.count++
	q.up(q.count)
}

// Pop removes and returns the highest priority element. The second result is
// false when the queue is empty, in which case nothing is changed.
func (q *Queue[T]) Pop() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	top := q.items[1]
	last := q.count
	q.items[1] = q.items[last]

	// Clear the vacated slot so the popped value isn't kept alive.
	var zero T
	q.items[last] = zero
	q.items = q.items[:last]
	q.count--

	if !q.IsEmpty() {
		q.down(1)
	}
	return top, true
}

// Peek returns the highest priority element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.items[1], true
}

// All returns an iterator that pops elements in priority order until the
// queue is empty. Elements that have been yielded are gone; stopping early
// leaves the rest in the queue.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Drain pops every element and returns them in priority order.
func (q *Queue[T]) Drain() []T {
	out := make([]T, 0, q.Len())
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}

func parent(i int) int { return i / 2 }

func left(i int) int { return 2 * i }

func right(i int) int { return left(i) + 1 }

// outranks compares the items at index i and j.
func (q *Queue[T]) outranks(i, j int) bool {
	return q.cmp.Outranks(q.items[i], q.items[j])
}

func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// higherPriorityChild returns the child of i that should move up first.
// The left child wins ties. The caller must ensure i has a left child.
func (q *Queue[T]) higherPriorityChild(i int) int {
	l, r := left(i), right(i)
	if r > q.count {
		return l
	}
	if q.outranks(r, l) {
		return r
	}
	return l
}

// up moves the element at index i towards the root while it outranks its parent.
func (q *Queue[T]) up(i int) {
	for i > 1 {
		p := parent(i)
		if !q.outranks(i, p) {
			break
		}
		q.swap(i, p)
		i = p
	}
}

// down moves the element at index i towards the leaves while a child outranks it.
func (q *Queue[T]) down(i int) {
	for left(i) <= q.count {
		child := q.higherPriorityChild(i)
		if !q.outranks(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}
