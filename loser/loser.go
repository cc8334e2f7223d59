// Package loser merges ordered sequences with a tournament tree.
// The tree layout follows https://github.com/bboreham/go-loser.
package loser

import (
	"iter"
)

type Sequence[E any] interface {
	All() iter.Seq[E]
}

func New[E any](sources []Sequence[E], less func(a, b E) bool) *Tree[E] {
	return &Tree[E]{
		sources: sources,
		less:    less,
	}
}

// A Tree plays a tournament between M sources. Leaf for source s sits at
// position s+M, the internal nodes at positions 1..M-1, and parent(n) is n/2.
// Each internal node remembers the source that lost the game there, and
// losers[0] holds the overall winner.
type Tree[E any] struct {
	sources []Sequence[E]
	less    func(a, b E) bool
	leaves  []leaf[E]
	losers  []int
}

type leaf[E any] struct {
	value E
	done  bool
	next  func() (E, bool)
}

// All yields the merged elements of every source in order. Equal elements
// from different sources come out in source order. A Tree can be iterated once.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		m := len(t.sources)
		if m == 0 {
			return
		}
		t.leaves = make([]leaf[E], m)
		t.losers = make([]int, m)
		for s, src := range t.sources {
			next, stop := iter.Pull(src.All())
			//nolint:gocritic // stopped when the merge returns.
			defer stop()
			t.leaves[s].next = next
			t.advance(s)
		}
		t.losers[0] = t.play(1)
		for {
			w := t.losers[0]
			if t.leaves[w].done || !yield(t.leaves[w].value) {
				return
			}
			t.advance(w)
			t.replay(w)
		}
	}
}

// advance loads the next value of source s, or marks it done.
func (t *Tree[E]) advance(s int) {
	l := &t.leaves[s]
	v, ok := l.next()
	if !ok {
		var zero E
		l.value, l.done = zero, true
		return
	}
	l.value = v
}

// beats reports whether source a should be emitted before source b.
// Finished sources lose to everything.
func (t *Tree[E]) beats(a, b int) bool {
	la, lb := &t.leaves[a], &t.leaves[b]
	switch {
	case la.done:
		return false
	case lb.done:
		return true
	case t.less(la.value, lb.value):
		return true
	case t.less(lb.value, la.value):
		return false
	}
	return a < b
}

// play returns the winning source below pos, recording losers on the way.
func (t *Tree[E]) play(pos int) int {
	m := len(t.leaves)
	if pos >= m {
		return pos - m
	}
	l, r := t.play(2*pos), t.play(2*pos+1)
	if t.beats(l, r) {
		t.losers[pos] = r
		return l
	}
	t.losers[pos] = l
	return r
}

// replay walks from the leaf of source s to the root after s has advanced.
func (t *Tree[E]) replay(s int) {
	winner := s
	for n := parent(s + len(t.leaves)); n > 0; n = parent(n) {
		if t.beats(t.losers[n], winner) {
			t.losers[n], winner = winner, t.losers[n]
		}
	}
	t.losers[0] = winner
}

func parent(i int) int { return i >> 1 }
