package scheduler

import "sync/atomic"

// WorkCounter is a lock-free, non-negative counter. A decrement that brings
// the count to exactly zero is a distinguished event reported to exactly one
// caller, which makes it suitable for triggering completion actions once.
//
// The Scheduler keeps two independent instances: one for total outstanding
// work and one for pool-only outstanding work. They stay separate from the
// metadata mutex so high-frequency bookkeeping from many workers never
// contends with metadata writes.
type WorkCounter struct {
	n atomic.Int64
}

// Increment atomically adds one.
func (c *WorkCounter) Increment() {
	c.n.Add(1)
}

// Decrement atomically subtracts one and reports whether the count reached
// zero on this call. Decrementing past zero is a programming error and
// panics rather than wrapping around.
func (c *WorkCounter) Decrement() bool {
	v := c.n.Add(-1)
	if v < 0 {
		panic("scheduler: work counter decremented below zero")
	}
	return v == 0
}

// IsZero reports whether the count is currently zero.
func (c *WorkCounter) IsZero() bool {
	return c.n.Load() == 0
}
