// Package progress provides sinks for tracking forward-model computations:
// an atomic counter safe for concurrent workers and a terminal progress bar
// built on top of it.
package progress

import "sync/atomic"

// Counter counts completed observation points. Safe for concurrent use by
// any number of workers; increments are never lost.
type Counter struct {
	n atomic.Int64
}

// Add records n more completed points.
func (c *Counter) Add(n int) { c.n.Add(int64(n)) }

// Count returns the number of points recorded so far.
func (c *Counter) Count() int64 { return c.n.Load() }
