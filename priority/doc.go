// Package priority implements a generic priority queue backed by a binary heap.
// The order of the queue is decided by a caller-supplied Comparator, so the same
// type serves as a min-heap, a max-heap, or any other total ordering.
//
// The heap is stored in a slice with slot 0 reserved, so that for the element at
// index i the parent is at i/2 and the children are at 2i and 2i+1. Push restores
// the heap by moving the new element up; Pop moves the last element to the root
// and then moves it down, picking the left child when both children tie.
//
// Key features:
//   - Generic over any element type
//   - O(log n) insertion and extraction
//   - O(1) peek and length
//   - Pluggable ordering through Comparator or a plain function
//   - Draining iteration with iter.Seq
//
// Basic usage:
//
//	// Create a min-heap
//	pq := priority.NewMin[int]()
//
//	pq.Push(4)
//	pq.Push(2)
//	pq.Push(9)
//
//	// Remove and return highest priority element
//	if v, ok := pq.Pop(); ok {
//	    fmt.Println(v) // 2
//	}
//
//	// Order by a custom rule
//	tasks := priority.NewFunc(func(a, b Task) bool {
//	    return a.Deadline.Before(b.Deadline)
//	})
//
//	// Pop everything that is left
//	for t := range tasks.All() {
//	    run(t)
//	}
//
// Pop on an empty queue returns false and leaves the queue untouched, however
// many times it is called. The order of elements that the comparator considers
// equal is unspecified.
//
// A Queue must not be used from several goroutines at once; wrap it with
// NewLocked when that is needed.
package priority
