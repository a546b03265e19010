package deque

// PushBackList appends a copy of every element of src, in order, to
// the back of the receiver. src is not modified. Appending a deque to
// itself duplicates its contents.
//
// A failed node allocation stops the merge; elements already appended
// stay in place and the receiver remains a valid deque.
func (d *Deque[T]) PushBackList(src *Deque[T]) error {
	// Bound the walk by the source's size at entry so a self-merge
	// does not chase its own freshly appended tail.
	n := src.head
	for i := src.size; i > 0; i-- {
		if err := d.PushBack(n.Val); err != nil {
			return err
		}
		n = n.next
	}
	return nil
}

// Splice moves src's entire chain to the back of the receiver in
// O(1) by relinking, allocating nothing. src is left valid and empty.
// Splicing a deque into itself is a no-op.
//
// The adopted nodes were allocated by src's allocator but will be
// released through the receiver's: callers mixing allocator-backed
// deques must splice only between deques sharing an allocator
// instance, or accept releases landing on the other strategy.
func (d *Deque[T]) Splice(src *Deque[T]) {
	if d == src || src.size == 0 {
		return
	}
	if d.tail == nil {
		d.head = src.head
		d.tail = src.tail
	} else {
		d.tail.next = src.head
		src.head.prev = d.tail
		d.tail = src.tail
	}
	d.size += src.size

	src.head = nil
	src.tail = nil
	src.size = 0
}
