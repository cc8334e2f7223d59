package priority

import "sync"

// Locked serializes access to a Queue with a mutex.
type Locked[T any] struct {
	mu sync.Mutex
	q  *Queue[T]
}

// NewLocked wraps q. The caller must not use q directly afterwards.
func NewLocked[T any](q *Queue[T]) *Locked[T] {
	return &Locked[T]{q: q}
}

func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Len()
}

func (l *Locked[T]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.IsEmpty()
}

func (l *Locked[T]) Push(value T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.q.Push(value)
}

func (l *Locked[T]) Pop() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Pop()
}

func (l *Locked[T]) Peek() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Peek()
}
