package deque

import (
	"errors"
	"iter"
)

// ErrInvalidIterator is returned when a past-the-end iterator is
// dereferenced or advanced.
var ErrInvalidIterator = errors.New("deque: invalid iterator")

// Iterator walks the chain head to tail with mutable element access.
// It holds a non-owning reference to its current node; the zero value
// is the past-the-end iterator. Iterators compare with ==, equal when
// they reference the same node or are both past-the-end.
//
// Any structural mutation of the deque (push, pop, clear, merge)
// invalidates outstanding iterators; using one afterwards is a
// programmer error the implementation does not detect.
type Iterator[T any] struct {
	cur *Node[T]
}

// Begin returns a forward iterator at the head. On an empty deque it
// equals End.
func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{cur: d.head} }

// End returns the forward past-the-end iterator.
func (d *Deque[T]) End() Iterator[T] { return Iterator[T]{} }

// Next advances to the successor node. Advancing a past-the-end
// iterator fails with ErrInvalidIterator.
func (it *Iterator[T]) Next() error {
	if it.cur == nil {
		return ErrInvalidIterator
	}
	it.cur = it.cur.next
	return nil
}

// Value returns a copy of the current element.
func (it *Iterator[T]) Value() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, ErrInvalidIterator
	}
	return it.cur.Val, nil
}

// Ref returns a pointer to the current element for in-place
// mutation.
func (it *Iterator[T]) Ref() (*T, error) {
	if it.cur == nil {
		return nil, ErrInvalidIterator
	}
	return &it.cur.Val, nil
}

// ConstIterator is the read-only forward view: same traversal as
// Iterator, no Ref. The zero value is past-the-end.
type ConstIterator[T any] struct {
	cur *Node[T]
}

// CBegin returns a read-only forward iterator at the head.
func (d *Deque[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{cur: d.head} }

// CEnd returns the read-only past-the-end iterator.
func (d *Deque[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

func (it *ConstIterator[T]) Next() error {
	if it.cur == nil {
		return ErrInvalidIterator
	}
	it.cur = it.cur.next
	return nil
}

func (it *ConstIterator[T]) Value() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, ErrInvalidIterator
	}
	return it.cur.Val, nil
}

// ReverseIterator walks the chain tail to head with mutable element
// access. Past-the-end sits conceptually before the head; the zero
// value represents it.
type ReverseIterator[T any] struct {
	cur *Node[T]
}

// RBegin returns a reverse iterator at the tail. On an empty deque it
// equals REnd.
func (d *Deque[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{cur: d.tail} }

// REnd returns the reverse past-the-end iterator.
func (d *Deque[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{} }

// Next advances toward the head.
func (it *ReverseIterator[T]) Next() error {
	if it.cur == nil {
		return ErrInvalidIterator
	}
	it.cur = it.cur.prev
	return nil
}

func (it *ReverseIterator[T]) Value() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, ErrInvalidIterator
	}
	return it.cur.Val, nil
}

func (it *ReverseIterator[T]) Ref() (*T, error) {
	if it.cur == nil {
		return nil, ErrInvalidIterator
	}
	return &it.cur.Val, nil
}

// All yields the elements front to back for use with range. The
// deque must not be structurally mutated during the walk.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Backward yields the elements back to front for use with range.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.tail; n != nil; n = n.prev {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Nodes yields the nodes front to back, exposing Val for in-place
// mutation during the walk. Structural mutation is still off-limits.
func (d *Deque[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}
