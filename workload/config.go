package workload

import (
	"fmt"

	"github.com/go-ini/ini"
)

// Allocator strategy names accepted by Config.Allocator.
const (
	AllocHeap  = "heap"
	AllocPool  = "pool"
	AllocSlab  = "slab"
	AllocArena = "arena"
)

// Config selects the shape of one workload run.
type Config struct {
	Ops         int    // total operations to execute
	Seed        int64  // math/rand seed; same seed, same digest
	Allocator   string // heap | pool | slab | arena
	SlabCap     int    // node capacity when Allocator is slab
	ArenaChunk  int    // nodes per chunk when Allocator is arena
	VerifyEvery int    // operations between chain verifications; 0 disables
}

// Default returns the configuration used when no ini file is given.
func Default() *Config {
	return &Config{
		Ops:         100_000,
		Seed:        1,
		Allocator:   AllocHeap,
		SlabCap:     4096,
		ArenaChunk:  256,
		VerifyEvery: 10_000,
	}
}

// Load reads a [workload] section from the ini file at path, filling
// unset keys from Default.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("workload: loading config: %w", err)
	}

	def := Default()
	sec := f.Section("workload")
	cfg := &Config{
		Ops:         sec.Key("ops").MustInt(def.Ops),
		Seed:        sec.Key("seed").MustInt64(def.Seed),
		Allocator:   sec.Key("allocator").MustString(def.Allocator),
		SlabCap:     sec.Key("slab_cap").MustInt(def.SlabCap),
		ArenaChunk:  sec.Key("arena_chunk").MustInt(def.ArenaChunk),
		VerifyEvery: sec.Key("verify_every").MustInt(def.VerifyEvery),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Allocator {
	case AllocHeap, AllocPool, AllocSlab, AllocArena:
	default:
		return fmt.Errorf("workload: unknown allocator %q", c.Allocator)
	}
	if c.Ops < 0 {
		return fmt.Errorf("workload: negative ops %d", c.Ops)
	}
	if c.Allocator == AllocSlab && c.SlabCap <= 0 {
		return fmt.Errorf("workload: slab_cap must be positive, got %d", c.SlabCap)
	}
	return nil
}
