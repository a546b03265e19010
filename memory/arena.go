package memory

// Arena is a chunked allocator. Values are bump-allocated out of
// fixed-size chunks; released values go on a freelist and are handed
// out again before a new chunk is carved. Get never fails: when the
// newest chunk is full and the freelist is empty, the arena grows by
// one chunk.
type Arena[T any] struct {
	chunks    [][]T
	used      int // values handed out of the newest chunk
	free      []*T
	chunkSize int
}

const defaultArenaChunk = 256

// NewArena creates an arena whose chunks hold chunkSize values each.
// A non-positive chunkSize selects the default of 256.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = defaultArenaChunk
	}
	return &Arena[T]{
		chunks:    [][]T{make([]T, chunkSize)},
		chunkSize: chunkSize,
	}
}

func (a *Arena[T]) Get() (*T, error) {
	if n := len(a.free); n > 0 {
		v := a.free[n-1]
		a.free = a.free[:n-1]
		return v, nil
	}
	cur := a.chunks[len(a.chunks)-1]
	if a.used == len(cur) {
		cur = make([]T, a.chunkSize)
		a.chunks = append(a.chunks, cur)
		a.used = 0
	}
	v := &cur[a.used]
	a.used++
	return v, nil
}

func (a *Arena[T]) Put(v *T) {
	if v == nil {
		return
	}
	a.free = append(a.free, v)
}

// Reset forgets every allocation at once: the freelist is dropped and
// the arena shrinks back to one zeroed chunk. Only valid when no
// value handed out by Get is still in use.
func (a *Arena[T]) Reset() {
	a.chunks = a.chunks[:1]
	clear(a.chunks[0])
	a.used = 0
	a.free = a.free[:0]
}

// Live returns the number of values handed out and not yet released.
func (a *Arena[T]) Live() int {
	total := (len(a.chunks)-1)*a.chunkSize + a.used
	return total - len(a.free)
}
