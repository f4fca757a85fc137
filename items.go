package flow

import "fmt"

// Items is an ordered, index-addressable collection of items that notifies
// subscribers about mutations. It is the sequence source a Flow observes:
// every mutation is reported as a single (pos, removed, added) replacement,
// and a pure reordering of n elements is modeled as a same-size remove+add
// at the affected range's start.
//
// Items is not safe for concurrent use; like the rest of the package it is
// meant to be driven from a single event loop.
type Items[T any] struct {
	elems     []T
	listeners []func(pos, removed, added int)
}

// NewItems returns a sequence holding the given elements.
func NewItems[T any](elems ...T) *Items[T] {
	return &Items[T]{elems: append([]T(nil), elems...)}
}

// Len returns the number of items.
func (it *Items[T]) Len() int {
	return len(it.elems)
}

// At returns the item at index i.
func (it *Items[T]) At(i int) T {
	return it.elems[i]
}

// OnChange subscribes fn to mutation notifications. Notifications are
// delivered synchronously, in mutation order, after the mutation has been
// applied to the underlying slice.
func (it *Items[T]) OnChange(fn func(pos, removed, added int)) {
	it.listeners = append(it.listeners, fn)
}

// Splice replaces the removeCount items starting at pos with the given
// items. It is the primitive all other mutators are expressed with.
func (it *Items[T]) Splice(pos, removeCount int, add ...T) {
	if pos < 0 || removeCount < 0 || pos+removeCount > len(it.elems) {
		panic(fmt.Sprintf("flow: splice [%d, %d) out of bounds, have %d items",
			pos, pos+removeCount, len(it.elems)))
	}

	tail := it.elems[pos+removeCount:]
	next := make([]T, 0, len(it.elems)-removeCount+len(add))
	next = append(next, it.elems[:pos]...)
	next = append(next, add...)
	next = append(next, tail...)
	it.elems = next

	for _, fn := range it.listeners {
		fn(pos, removeCount, len(add))
	}
}

// Append adds items at the end of the sequence.
func (it *Items[T]) Append(add ...T) {
	it.Splice(len(it.elems), 0, add...)
}

// InsertAt inserts items before position pos.
func (it *Items[T]) InsertAt(pos int, add ...T) {
	it.Splice(pos, 0, add...)
}

// RemoveRange removes the items in [from, to).
func (it *Items[T]) RemoveRange(from, to int) {
	it.Splice(from, to-from)
}

// Set replaces the single item at index i.
func (it *Items[T]) Set(i int, v T) {
	it.Splice(i, 1, v)
}

// Permute reorders the whole sequence so that position i holds the element
// previously at perm[i]. perm must be a permutation of [0, Len()). The
// mutation is reported as a single same-size replacement spanning the
// smallest range outside of which no element moved; an identity permutation
// reports nothing.
func (it *Items[T]) Permute(perm []int) {
	if len(perm) != len(it.elems) {
		panic(fmt.Sprintf("flow: permutation of length %d over %d items",
			len(perm), len(it.elems)))
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			panic(fmt.Sprintf("flow: %v is not a permutation", perm))
		}
		seen[p] = true
	}

	lo, hi := len(perm), 0
	for i, p := range perm {
		if i != p {
			if i < lo {
				lo = i
			}
			hi = i + 1
		}
	}
	if lo >= hi {
		return
	}

	moved := make([]T, hi-lo)
	for i := lo; i < hi; i++ {
		moved[i-lo] = it.elems[perm[i]]
	}
	it.Splice(lo, hi-lo, moved...)
}
