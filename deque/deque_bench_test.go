package deque

import (
	"testing"

	gammazero "github.com/gammazero/deque"

	"chaindeq/memory"
)

var benchStrategies = []string{"heap", "pool", "slab", "arena"}

// newBenchAllocator sizes the bounded strategies so they never refuse
// a push during the run.
func newBenchAllocator(name string, hiwater int) memory.Allocator[Node[uint64]] {
	switch name {
	case "pool":
		return memory.NewPool[Node[uint64]]()
	case "slab":
		return memory.NewSlab[Node[uint64]](max(hiwater, 1))
	case "arena":
		return memory.NewArena[Node[uint64]](1 << 10)
	default:
		return memory.Heap[Node[uint64]]{}
	}
}

func BenchmarkPushBack(b *testing.B) {
	for _, name := range benchStrategies {
		b.Run(name, func(b *testing.B) {
			d := NewWith[uint64](newBenchAllocator(name, b.N))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = d.PushBack(uint64(i))
			}
		})
	}
}

func BenchmarkPushPopChurn(b *testing.B) {
	for _, name := range benchStrategies {
		b.Run(name, func(b *testing.B) {
			d := NewWith[uint64](newBenchAllocator(name, 1<<12))
			for i := 0; i < 1<<10; i++ {
				_ = d.PushBack(uint64(i))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = d.PushBack(uint64(i))
				_, _ = d.PopFront()
			}
		})
	}
}

func BenchmarkTraverse(b *testing.B) {
	d := New[uint64]()
	for i := 0; i < 1<<12; i++ {
		_ = d.PushBack(uint64(i))
	}
	b.ResetTimer()
	var sum uint64
	for i := 0; i < b.N; i++ {
		for n := d.Head(); n != nil; n = n.Next() {
			sum += n.Val
		}
	}
	_ = sum
}

func BenchmarkSplice(b *testing.B) {
	pairs := make([][2]*Deque[uint64], b.N)
	for i := range pairs {
		pairs[i] = [2]*Deque[uint64]{Of[uint64](1, 2, 3, 4), Of[uint64](5, 6, 7, 8)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pairs[i][0].Splice(pairs[i][1])
	}
}

// Comparative churn against the ring-buffer deque the rest of the
// ecosystem reaches for, to keep the linked chain honest about its
// constant factors.
func BenchmarkChurnGammazero(b *testing.B) {
	var q gammazero.Deque[uint64]
	for i := 0; i < 1<<10; i++ {
		q.PushBack(uint64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.PushBack(uint64(i))
		q.PopFront()
	}
}
