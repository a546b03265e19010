package memory

// Counting wraps another allocator and counts the traffic through it.
// It is a diagnostic aid for checking allocation discipline in tests;
// like the rest of the package it is not synchronized.
type Counting[T any] struct {
	inner Allocator[T]
	gets  int64
	puts  int64
	fails int64
}

// NewCounting wraps inner with traffic counters.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	return &Counting[T]{inner: inner}
}

func (c *Counting[T]) Get() (*T, error) {
	v, err := c.inner.Get()
	if err != nil {
		c.fails++
		return nil, err
	}
	c.gets++
	return v, nil
}

func (c *Counting[T]) Put(v *T) {
	c.puts++
	c.inner.Put(v)
}

// Gets returns the number of successful allocations.
func (c *Counting[T]) Gets() int64 { return c.gets }

// Puts returns the number of releases.
func (c *Counting[T]) Puts() int64 { return c.puts }

// Fails returns the number of failed allocations.
func (c *Counting[T]) Fails() int64 { return c.fails }

// Live returns allocations not yet released. It can go negative when
// storage allocated elsewhere is released through this instance.
func (c *Counting[T]) Live() int64 { return c.gets - c.puts }
