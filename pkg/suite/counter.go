package suite

import "sync/atomic"

// Counter counts suite constructions. It is safe for concurrent
// use and never decreases except through Reset.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Inc records one construction and returns the new total.
func (c *Counter) Inc() int64 {
	return c.n.Add(1)
}

// Load returns the number of constructions recorded.
func (c *Counter) Load() int64 {
	return c.n.Load()
}

// Reset sets the counter back to zero. Intended for tests.
func (c *Counter) Reset() {
	c.n.Store(0)
}

// DefaultCounter is the process-wide counter used by suites built
// without WithCounter.
var DefaultCounter = NewCounter()

// TotalCreated returns the number of suites constructed against
// DefaultCounter, fresh and copied.
func TotalCreated() int64 {
	return DefaultCounter.Load()
}
