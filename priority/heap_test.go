package priority

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkHeap asserts the slot layout and that no child outranks its parent.
func checkHeap[T any](t *testing.T, q *Queue[T]) {
	t.Helper()
	require.Equal(t, q.count, len(q.items)-1)
	for i := 2; i <= q.count; i++ {
		require.False(t, q.outranks(i, parent(i)),
			"child %d outranks parent %d", i, parent(i))
	}
}

func TestIndexArithmetic(t *testing.T) {
	tests := []struct {
		i, parent, left, right int
	}{
		{i: 1, parent: 0, left: 2, right: 3},
		{i: 2, parent: 1, left: 4, right: 5},
		{i: 3, parent: 1, left: 6, right: 7},
		{i: 6, parent: 3, left: 12, right: 13},
		{i: 7, parent: 3, left: 14, right: 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.parent, parent(tt.i), "parent(%d)", tt.i)
		assert.Equal(t, tt.left, left(tt.i), "left(%d)", tt.i)
		assert.Equal(t, tt.right, right(tt.i), "right(%d)", tt.i)
	}
}

func TestHigherPriorityChild(t *testing.T) {
	tests := []struct {
		name  string
		items []int // live elements in slot order
		want  int
	}{
		{name: "only left child", items: []int{1, 5}, want: 2},
		{name: "left outranks", items: []int{1, 3, 4}, want: 2},
		{name: "right outranks", items: []int{1, 4, 3}, want: 3},
		{name: "tie goes left", items: []int{1, 4, 4}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewMin[int]()
			q.items = append([]int{0}, tt.items...)
			q.count = len(tt.items)
			assert.Equal(t, tt.want, q.higherPriorityChild(1))
		})
	}
}

func TestHeapProperty(t *testing.T) {
	//nolint:gosec // Don't need crypto security in test
	r := rand.New(rand.NewSource(1))
	for _, q := range []*Queue[int]{NewMin[int](), NewMax[int]()} {
		for i := 0; i < 2000; i++ {
			if r.Intn(5) < 3 {
				q.Push(r.Intn(50))
			} else {
				q.Pop()
			}
			checkHeap(t, q)
		}
	}
}

func TestPop_ClearsVacatedSlot(t *testing.T) {
	q := NewFunc(func(a, b *int) bool { return *a < *b })
	for i := 0; i < 4; i++ {
		v := i
		q.Push(&v)
	}

	_, ok := q.Pop()
	require.True(t, ok)

	assert.Nil(t, q.items[0])
	full := q.items[:cap(q.items)]
	for i := q.count + 1; i < len(full); i++ {
		assert.Nil(t, full[i], "slot %d", i)
	}
}

func TestPop_EmptyDoesNotMutate(t *testing.T) {
	q := NewMax[int](WithCapacity(8))
	before := cap(q.items)

	for i := 0; i < 3; i++ {
		v, ok := q.Pop()
		assert.False(t, ok)
		assert.Zero(t, v)
	}
	assert.Equal(t, 0, q.count)
	assert.Len(t, q.items, 1)
	assert.Equal(t, before, cap(q.items))
}

func TestWithCapacity(t *testing.T) {
	assert.Equal(t, 17, cap(NewMin[int](WithCapacity(16)).items))
	assert.Equal(t, 1, cap(NewMin[int](WithCapacity(-3)).items))
}
