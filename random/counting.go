package random

import "sync/atomic"

// Counting decorates a [Source] and counts every call made through it,
// successful or not.
type Counting struct {
	inner Source
	calls atomic.Int64
}

// NewCounting wraps inner. A nil inner falls back to [Default].
func NewCounting(inner Source) *Counting {
	if inner == nil {
		inner = Default()
	}
	return &Counting{inner: inner}
}

// IntN records the call, then forwards it to the inner source.
func (c *Counting) IntN(n int) (int, error) {
	c.calls.Add(1)
	return c.inner.IntN(n)
}

// Calls returns the number of IntN calls observed so far.
func (c *Counting) Calls() int64 { return c.calls.Load() }
