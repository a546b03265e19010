package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, cfg *Config) *Report {
	t.Helper()
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	rep, err := r.Run()
	require.NoError(t, err)
	return rep
}

func TestRunDeterministic(t *testing.T) {
	cfg := Default()
	cfg.Ops = 20_000
	cfg.VerifyEvery = 5_000

	a := runWith(t, cfg)
	b := runWith(t, cfg)

	assert.Equal(t, a.Digest, b.Digest, "same seed must reproduce the same digest")
	assert.Equal(t, a.FinalLen, b.FinalLen)
	assert.Equal(t, cfg.Ops, a.Ops)
}

func TestRunnerReusable(t *testing.T) {
	cfg := Default()
	cfg.Ops = 5_000

	r, err := NewRunner(cfg)
	require.NoError(t, err)

	a, err := r.Run()
	require.NoError(t, err)
	b, err := r.Run()
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest, "a reused runner must replay the same script")
	assert.Equal(t, a.FinalLen, b.FinalLen)
	assert.Equal(t, a.Stats.Pushes, b.Stats.Pushes)
	assert.Equal(t, a.Stats.Pops, b.Stats.Pops)
}

func TestSeedChangesDigest(t *testing.T) {
	cfg := Default()
	cfg.Ops = 20_000

	a := runWith(t, cfg)

	cfg2 := *cfg
	cfg2.Seed = 2
	b := runWith(t, &cfg2)

	assert.NotEqual(t, a.Digest, b.Digest)
}

func TestAllocatorsAgreeOnDigest(t *testing.T) {
	// The strategy changes where nodes live, never what the chain
	// holds: every allocator large enough to never refuse a push
	// must produce the heap digest.
	base := Default()
	base.Ops = 10_000
	want := runWith(t, base)

	for _, name := range []string{AllocPool, AllocArena} {
		cfg := *base
		cfg.Allocator = name
		rep := runWith(t, &cfg)
		assert.Equal(t, want.Digest, rep.Digest, "allocator %s", name)
		assert.Equal(t, want.FinalLen, rep.FinalLen, "allocator %s", name)
	}
}

func TestSlabExhaustionDropsAndSurvives(t *testing.T) {
	cfg := Default()
	cfg.Ops = 10_000
	cfg.Allocator = AllocSlab
	cfg.SlabCap = 64 // far below the expected high-water mark

	rep := runWith(t, cfg)
	assert.Positive(t, rep.Stats.OOMDrops, "a tiny slab should refuse pushes")
	assert.LessOrEqual(t, rep.FinalLen, 64)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.ini")
	require.NoError(t, os.WriteFile(path, []byte(
		"[workload]\nops = 500\nseed = 42\nallocator = slab\nslab_cap = 128\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Ops)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, AllocSlab, cfg.Allocator)
	assert.Equal(t, 128, cfg.SlabCap)
	// Unset keys fall back to defaults.
	assert.Equal(t, Default().VerifyEvery, cfg.VerifyEvery)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte(
		"[workload]\nallocator = mmap\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "unknown allocator")
}

func TestRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Allocator = "bogus"
	_, err := NewRunner(cfg)
	assert.ErrorContains(t, err, "unknown allocator")

	cfg = Default()
	cfg.Allocator = AllocSlab
	cfg.SlabCap = 0
	_, err = NewRunner(cfg)
	assert.ErrorContains(t, err, "slab_cap")
}
