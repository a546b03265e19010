// Package deque implements a generic double-ended queue over a
// doubly-linked chain of nodes. Insertion, removal, and inspection at
// either end are O(1); the chain supports forward, const-forward, and
// reverse iteration, deep copies, O(1) ownership transfer, and both
// copying and splicing merges.
//
// Node storage is sourced through a pluggable memory.Allocator, so a
// caller can keep nodes on the heap, recycle them through a pool, or
// confine them to a fixed slab without touching the container logic.
//
// A Deque assumes one logical owner at a time. It is not safe for
// concurrent use; mutating it from multiple goroutines without
// external synchronization is a data race on the node chain.
package deque
