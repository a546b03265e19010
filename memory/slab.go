package memory

import "unsafe"

// Slab is a fixed-capacity allocator over a single preallocated
// block. Get pops from a freelist and fails with ErrOutOfMemory once
// the block is exhausted; a later Put makes the slab usable again.
//
// Put panics on a pointer that did not come from this slab. Callers
// that move storage between owners (for example by splicing deques)
// must keep every owner on the same slab instance.
type Slab[T any] struct {
	block []T
	free  []*T
}

// NewSlab preallocates storage for capacity values.
func NewSlab[T any](capacity int) *Slab[T] {
	if capacity <= 0 {
		panic("memory: slab capacity must be positive")
	}
	s := &Slab[T]{
		block: make([]T, capacity),
		free:  make([]*T, 0, capacity),
	}
	for i := capacity - 1; i >= 0; i-- {
		s.free = append(s.free, &s.block[i])
	}
	return s
}

func (s *Slab[T]) Get() (*T, error) {
	if len(s.free) == 0 {
		return nil, ErrOutOfMemory
	}
	v := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	return v, nil
}

func (s *Slab[T]) Put(v *T) {
	if !s.owns(v) {
		panic("memory: Put of pointer not allocated from this slab")
	}
	s.free = append(s.free, v)
}

// owns reports whether v points into the slab's block.
func (s *Slab[T]) owns(v *T) bool {
	if v == nil {
		return false
	}
	base := uintptr(unsafe.Pointer(&s.block[0]))
	end := base + uintptr(len(s.block))*unsafe.Sizeof(s.block[0])
	p := uintptr(unsafe.Pointer(v))
	return p >= base && p < end
}

// Cap returns the slab's total capacity.
func (s *Slab[T]) Cap() int { return len(s.block) }

// InUse returns how many values are currently allocated.
func (s *Slab[T]) InUse() int { return len(s.block) - len(s.free) }
