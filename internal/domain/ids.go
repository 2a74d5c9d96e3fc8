package domain

import "sync/atomic"

// IDGenerator hands out spot identities.
type IDGenerator interface {
	// Next returns an id that has never been returned before.
	Next() int64
	// Last returns the most recently issued id, or the seed if none was issued.
	Last() int64
}

// Counter is a monotonic IDGenerator safe for concurrent use.
type Counter struct {
	last atomic.Int64
}

// NewCounter returns a Counter whose first id is seed+1.
func NewCounter(seed int64) *Counter {
	c := &Counter{}
	c.last.Store(seed)
	return c
}

// Next returns the next id.
func (c *Counter) Next() int64 {
	return c.last.Add(1)
}

// Last returns the most recently issued id.
func (c *Counter) Last() int64 {
	return c.last.Load()
}
