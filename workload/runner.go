package workload

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"

	"chaindeq/deque"
	"chaindeq/memory"
)

// Report is the outcome of one workload run.
type Report struct {
	Ops      int
	FinalLen int
	Digest   uint64 // xxhash over the final forward value stream
	Stats    Stats
}

// Runner executes one deterministic script against a single deque.
type Runner struct {
	cfg   *Config
	d     *deque.Deque[uint64]
	rng   *rand.Rand
	stats Stats
}

// NewRunner builds the allocator strategy named by cfg and an empty
// deque on top of it. A nil cfg selects Default.
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	alloc, err := buildAllocator(cfg)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg: cfg,
		d:   deque.NewWith[uint64](alloc),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

func buildAllocator(cfg *Config) (memory.Allocator[deque.Node[uint64]], error) {
	switch cfg.Allocator {
	case AllocHeap:
		return memory.Heap[deque.Node[uint64]]{}, nil
	case AllocPool:
		return memory.NewPool[deque.Node[uint64]](), nil
	case AllocSlab:
		return memory.NewSlab[deque.Node[uint64]](cfg.SlabCap), nil
	case AllocArena:
		return memory.NewArena[deque.Node[uint64]](cfg.ArenaChunk), nil
	default:
		return nil, fmt.Errorf("workload: unknown allocator %q", cfg.Allocator)
	}
}

// Run plays the script to completion: a seeded mix of pushes at both
// ends, pops at both ends, and periodic verification traversals. A
// push refused with ErrOutOfMemory is counted and dropped; the deque
// keeps its prior contents. Each call replays the script from
// scratch, so a Runner can be reused and the same Config always
// produces the same Report.
func (r *Runner) Run() (*Report, error) {
	r.d.Clear()
	r.stats.Clear()
	r.rng = rand.New(rand.NewSource(r.cfg.Seed))

	for i := 0; i < r.cfg.Ops; i++ {
		if err := r.step(uint64(i)); err != nil {
			return nil, err
		}
		if r.cfg.VerifyEvery > 0 && (i+1)%r.cfg.VerifyEvery == 0 {
			if err := r.verify(); err != nil {
				return nil, err
			}
		}
	}
	if err := r.verify(); err != nil {
		return nil, err
	}

	return &Report{
		Ops:      r.cfg.Ops,
		FinalLen: r.d.Len(),
		Digest:   digest(r.d),
		Stats:    r.stats,
	}, nil
}

func (r *Runner) step(val uint64) error {
	// Pushes outweigh pops 2:1 so the chain grows and shrinks
	// instead of hovering at empty.
	switch r.rng.Intn(6) {
	case 0, 1:
		start := time.Now()
		err := r.d.PushBack(val)
		r.stats.AddPushTime(start)
		if errors.Is(err, memory.ErrOutOfMemory) {
			r.stats.OOMDrops++
			return nil
		}
		return err
	case 2, 3:
		start := time.Now()
		err := r.d.PushFront(val)
		r.stats.AddPushTime(start)
		if errors.Is(err, memory.ErrOutOfMemory) {
			r.stats.OOMDrops++
			return nil
		}
		return err
	case 4:
		start := time.Now()
		_, err := r.d.PopFront()
		r.stats.AddPopTime(start)
		if errors.Is(err, deque.ErrEmpty) {
			return nil
		}
		return err
	default:
		start := time.Now()
		_, err := r.d.PopBack()
		r.stats.AddPopTime(start)
		if errors.Is(err, deque.ErrEmpty) {
			return nil
		}
		return err
	}
}

// verify walks the chain both ways and checks they mirror each other.
func (r *Runner) verify() error {
	start := time.Now()
	defer r.stats.AddTraverseTime(start)

	fwd := r.d.Values()
	if len(fwd) != r.d.Len() {
		return fmt.Errorf("workload: traversal found %d values, Len says %d", len(fwd), r.d.Len())
	}
	i := len(fwd) - 1
	for v := range r.d.Backward() {
		if i < 0 || fwd[i] != v {
			return fmt.Errorf("workload: reverse traversal diverged at index %d", i)
		}
		i--
	}
	if i != -1 {
		return fmt.Errorf("workload: reverse traversal short by %d values", i+1)
	}
	return nil
}

// digest hashes the forward value stream in order, little-endian.
func digest(d *deque.Deque[uint64]) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for v := range d.All() {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
