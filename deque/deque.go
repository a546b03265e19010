package deque

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"chaindeq/memory"
)

// ErrEmpty is returned by reads and removals on an empty deque.
var ErrEmpty = errors.New("deque: empty")

// Node is one link of the chain. The element value is exported for
// in-place mutation; the links are owned by the deque and never
// written from outside.
type Node[T any] struct {
	Val T

	prev *Node[T]
	next *Node[T]
}

// Next returns the successor node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the predecessor node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Deque is a double-ended queue over a nil-bounded doubly-linked
// chain. The zero value is not usable; construct with New, NewWith,
// Of, or Collect.
//
// Chain invariants, held across every exported operation: head is nil
// exactly when tail is nil exactly when size is 0; head.prev and
// tail.next are always nil; following next from head reaches tail in
// size-1 steps and prev from tail mirrors it.
type Deque[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int

	alloc memory.Allocator[Node[T]]
}

// New returns an empty heap-backed deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{alloc: memory.Heap[Node[T]]{}}
}

// NewWith returns an empty deque whose nodes are sourced from alloc.
// A nil alloc falls back to the heap.
func NewWith[T any](alloc memory.Allocator[Node[T]]) *Deque[T] {
	if alloc == nil {
		return New[T]()
	}
	return &Deque[T]{alloc: alloc}
}

// Of returns a heap-backed deque holding vals in order, front to
// back.
func Of[T any](vals ...T) *Deque[T] {
	d := New[T]()
	for _, v := range vals {
		// Heap allocation cannot fail.
		_ = d.PushBack(v)
	}
	return d
}

// Collect drains seq into a new heap-backed deque, back-inserting in
// sequence order.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	d := New[T]()
	for v := range seq {
		_ = d.PushBack(v)
	}
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.size == 0 }

// Head returns the first node, or nil when empty. The returned node
// is owned by the deque; callers may read links and mutate Val but
// must not outlive the next structural mutation with it.
func (d *Deque[T]) Head() *Node[T] { return d.head }

// Tail returns the last node, or nil when empty.
func (d *Deque[T]) Tail() *Node[T] { return d.tail }

// newNode allocates and initializes an unlinked node. On allocation
// failure the deque is untouched.
func (d *Deque[T]) newNode(v T) (*Node[T], error) {
	n, err := d.alloc.Get()
	if err != nil {
		return nil, err
	}
	n.Val = v
	n.prev = nil
	n.next = nil
	return n, nil
}

// release unlinks nothing; it zeroes n and hands its storage back to
// the allocator. Zeroing keeps recycled storage from pinning old
// element values.
func (d *Deque[T]) release(n *Node[T]) {
	*n = Node[T]{}
	d.alloc.Put(n)
}

// linkFront attaches an already-allocated node as the new head.
func (d *Deque[T]) linkFront(n *Node[T]) {
	if d.head == nil {
		d.head = n
		d.tail = n
	} else {
		n.next = d.head
		d.head.prev = n
		d.head = n
	}
	d.size++
}

// linkBack attaches an already-allocated node as the new tail.
func (d *Deque[T]) linkBack(n *Node[T]) {
	if d.tail == nil {
		d.head = n
		d.tail = n
	} else {
		n.prev = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.size++
}

// PushFront inserts v before the current head. The only possible
// failure is allocation, which leaves the deque unchanged.
func (d *Deque[T]) PushFront(v T) error {
	n, err := d.newNode(v)
	if err != nil {
		return err
	}
	d.linkFront(n)
	return nil
}

// PushBack inserts v after the current tail.
func (d *Deque[T]) PushBack(v T) error {
	n, err := d.newNode(v)
	if err != nil {
		return err
	}
	d.linkBack(n)
	return nil
}

// EmplaceFront inserts a zero element at the front and returns a
// pointer to it for in-place construction, avoiding a copy of T.
func (d *Deque[T]) EmplaceFront() (*T, error) {
	var zero T
	n, err := d.newNode(zero)
	if err != nil {
		return nil, err
	}
	d.linkFront(n)
	return &n.Val, nil
}

// EmplaceBack inserts a zero element at the back and returns a
// pointer to it for in-place construction.
func (d *Deque[T]) EmplaceBack() (*T, error) {
	var zero T
	n, err := d.newNode(zero)
	if err != nil {
		return nil, err
	}
	d.linkBack(n)
	return &n.Val, nil
}

// PopFront removes the head and returns its value. Fails with
// ErrEmpty on an empty deque.
func (d *Deque[T]) PopFront() (T, error) {
	if d.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := d.head
	d.head = n.next
	if d.head != nil {
		d.head.prev = nil
	} else {
		d.tail = nil
	}
	d.size--

	v := n.Val
	d.release(n)
	return v, nil
}

// PopBack removes the tail and returns its value. Fails with ErrEmpty
// on an empty deque.
func (d *Deque[T]) PopBack() (T, error) {
	if d.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := d.tail
	d.tail = n.prev
	if d.tail != nil {
		d.tail.next = nil
	} else {
		d.head = nil
	}
	d.size--

	v := n.Val
	d.release(n)
	return v, nil
}

// PeekFront returns a copy of the head value without removing it.
func (d *Deque[T]) PeekFront() (T, error) {
	if d.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return d.head.Val, nil
}

// PeekBack returns a copy of the tail value without removing it.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return d.tail.Val, nil
}

// Front returns a pointer to the head value for in-place mutation.
// The pointer is valid until the next structural mutation.
func (d *Deque[T]) Front() (*T, error) {
	if d.head == nil {
		return nil, ErrEmpty
	}
	return &d.head.Val, nil
}

// Back returns a pointer to the tail value for in-place mutation.
func (d *Deque[T]) Back() (*T, error) {
	if d.tail == nil {
		return nil, ErrEmpty
	}
	return &d.tail.Val, nil
}

// Clear releases every node through the allocator and resets the
// deque to empty. Calling it on an empty deque is a no-op.
func (d *Deque[T]) Clear() {
	for n := d.head; n != nil; {
		next := n.next
		d.release(n)
		n = next
	}
	d.head = nil
	d.tail = nil
	d.size = 0
}

// Clone returns a deep, heap-backed copy: fresh nodes holding the
// same values in the same order, sharing nothing with d.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	return d.CloneWith(nil)
}

// CloneWith is Clone with the copy's allocator chosen by the caller;
// nil selects the heap. On allocation failure the partial copy is
// cleared and the error returned.
func (d *Deque[T]) CloneWith(alloc memory.Allocator[Node[T]]) (*Deque[T], error) {
	c := NewWith[T](alloc)
	if err := c.PushBackList(d); err != nil {
		c.Clear()
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the receiver's contents with a deep copy of src,
// keeping the receiver's allocator. The existing chain is released
// first. CopyFrom(d) on itself is a no-op.
func (d *Deque[T]) CopyFrom(src *Deque[T]) error {
	if d == src {
		return nil
	}
	d.Clear()
	return d.PushBackList(src)
}

// Take transfers src's entire chain to the receiver in O(1),
// releasing the receiver's existing nodes first. src is left valid
// and empty. The adopted nodes keep their affinity to src's
// allocator; see Splice for the release rule. Take(d) on itself is a
// no-op.
func (d *Deque[T]) Take(src *Deque[T]) {
	if d == src {
		return
	}
	d.Clear()
	d.head = src.head
	d.tail = src.tail
	d.size = src.size
	src.head = nil
	src.tail = nil
	src.size = 0
}

// Values returns the elements front to back as a fresh slice.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.size)
	for n := d.head; n != nil; n = n.next {
		out = append(out, n.Val)
	}
	return out
}

// String renders the deque front to back, e.g. [1 2 3].
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := d.head; n != nil; n = n.next {
		if n != d.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.Val)
	}
	b.WriteByte(']')
	return b.String()
}
