package workload

import (
	"log"
	"time"
)

// Stats accumulates operation counts and per-class elapsed time for
// one run. Times are in microseconds.
type Stats struct {
	Pushes    int64
	Pops      int64
	Traverses int64
	OOMDrops  int64

	PushTime     int64
	PopTime      int64
	TraverseTime int64
}

func (s *Stats) AddPushTime(start time.Time) {
	s.PushTime += time.Since(start).Microseconds()
	s.Pushes++
}

func (s *Stats) AddPopTime(start time.Time) {
	s.PopTime += time.Since(start).Microseconds()
	s.Pops++
}

func (s *Stats) AddTraverseTime(start time.Time) {
	s.TraverseTime += time.Since(start).Microseconds()
	s.Traverses++
}

// Log prints the accumulated figures through the standard logger.
func (s *Stats) Log() {
	log.Printf("pushes: %d (%dµs), pops: %d (%dµs), traversals: %d (%dµs), oom drops: %d",
		s.Pushes, s.PushTime, s.Pops, s.PopTime, s.Traverses, s.TraverseTime, s.OOMDrops)
}

// Clear resets every counter.
func (s *Stats) Clear() {
	*s = Stats{}
}
