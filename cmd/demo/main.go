package main

import (
	"errors"
	"flag"
	"log"

	"chaindeq/deque"
	"chaindeq/memory"
	"chaindeq/workload"
)

func main() {
	cfgPath := flag.String("config", "workload.ini", "workload ini file")
	flag.Parse()

	// ---------------- Basic operations ----------------

	d := deque.Of(1, 2, 3, 4, 5)
	log.Printf("built %v (len %d)", d, d.Len())

	_ = d.PushFront(0)
	_ = d.PushBack(6)
	front, _ := d.PeekFront()
	back, _ := d.PeekBack()
	log.Printf("after pushes: %v, front %d, back %d", d, front, back)

	if _, err := d.PopFront(); err != nil {
		log.Fatalf("pop front failed: %v", err)
	}
	if _, err := d.PopBack(); err != nil {
		log.Fatalf("pop back failed: %v", err)
	}
	log.Printf("after pops: %v", d)

	// ---------------- Iteration, three ways ----------------

	var fwd []int
	for it := d.Begin(); it != d.End(); {
		v, _ := it.Value()
		fwd = append(fwd, v)
		_ = it.Next()
	}
	log.Printf("forward:  %v", fwd)

	var ro []int
	for it := d.CBegin(); it != d.CEnd(); {
		v, _ := it.Value()
		ro = append(ro, v)
		_ = it.Next()
	}
	log.Printf("const:    %v", ro)

	var rev []int
	for it := d.RBegin(); it != d.REnd(); {
		v, _ := it.Value()
		rev = append(rev, v)
		_ = it.Next()
	}
	log.Printf("reverse:  %v", rev)

	// ---------------- Copy and move semantics ----------------

	cp, err := d.Clone()
	if err != nil {
		log.Fatalf("clone failed: %v", err)
	}
	_, _ = cp.PopBack()
	log.Printf("original %v unaffected by popping the copy %v", d, cp)

	moved := deque.New[int]()
	moved.Take(d)
	log.Printf("after move: destination %v, source %v (empty=%v)", moved, d, d.IsEmpty())

	// ---------------- Merging ----------------

	a := deque.Of(1, 2, 3)
	b := deque.Of(6, 7)
	_ = a.PushBackList(b)
	log.Printf("copy merge: %v, source intact: %v", a, b)

	a.Splice(b)
	log.Printf("move merge: %v, source drained: %v", a, b)

	// ---------------- Boundary errors ----------------

	empty := deque.New[int]()
	if _, err := empty.PopFront(); errors.Is(err, deque.ErrEmpty) {
		log.Printf("pop on empty deque refused: %v", err)
	}
	end := empty.End()
	if _, err := end.Value(); errors.Is(err, deque.ErrInvalidIterator) {
		log.Printf("dereferencing end() refused: %v", err)
	}

	slab := memory.NewSlab[deque.Node[int]](1)
	bounded := deque.NewWith[int](slab)
	_ = bounded.PushBack(1)
	if err := bounded.PushBack(2); errors.Is(err, memory.ErrOutOfMemory) {
		log.Printf("slab exhausted, deque intact: %v", bounded)
	}

	// ---------------- Configured workload ----------------

	cfg, err := workload.Load(*cfgPath)
	if err != nil {
		log.Printf("no usable config (%v), falling back to defaults", err)
		cfg = workload.Default()
	}

	runner, err := workload.NewRunner(cfg)
	if err != nil {
		log.Fatalf("workload setup failed: %v", err)
	}
	report, err := runner.Run()
	if err != nil {
		log.Fatalf("workload failed: %v", err)
	}
	log.Printf("workload done: %d ops on %q allocator, final len %d, digest %016x",
		report.Ops, cfg.Allocator, report.FinalLen, report.Digest)
	report.Stats.Log()
}
