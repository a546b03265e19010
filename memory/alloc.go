package memory

import "errors"

// ErrOutOfMemory is returned by bounded allocators when a request
// cannot be satisfied. The pass-through and growing allocators never
// return it.
var ErrOutOfMemory = errors.New("memory: out of memory")

// Allocator hands out storage for single values of type T and takes
// it back. Implementations decide where the storage comes from; the
// contract is only that Get and Put pair up on the same instance.
//
// Storage returned by Get may hold recycled contents; callers
// initialize it before use. None of the implementations besides Pool
// tolerate concurrent calls, so callers that share an allocator
// across goroutines need external synchronization.
type Allocator[T any] interface {
	Get() (*T, error)
	Put(*T)
}

// Heap is the default allocator: a pass-through to the Go runtime.
// It holds no state. Put drops the value and leaves reclamation to
// the garbage collector. Get never fails.
type Heap[T any] struct{}

func (Heap[T]) Get() (*T, error) { return new(T), nil }

func (Heap[T]) Put(*T) {}
