// Package memory provides the node-storage allocation strategies used
// by the deque. It defines the two-operation Allocator contract and
// four implementations: a pass-through to the runtime heap, a
// sync.Pool-backed recycling Pool, a fixed-capacity Slab, and a
// chunked Arena, plus a Counting decorator for diagnostics.
//
// The memory package is dependency-free and forms the leaf of the
// module: containers depend on it, never the reverse.
package memory
