package memory

import "sync"

// Pool is a typed recycling allocator backed by sync.Pool. Storage
// released with Put becomes eligible for reuse by later Gets, which
// keeps steady-state churn away from the garbage collector. Get never
// fails.
//
// Unlike the other strategies, Pool is safe for concurrent use; the
// containers built on it still are not.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return new(T) },
		},
	}
}

func (p *Pool[T]) Get() (*T, error) {
	return p.p.Get().(*T), nil
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
