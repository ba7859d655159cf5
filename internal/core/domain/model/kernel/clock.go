package kernel

import "time"

// Clock supplies the evaluation instant for creation times and reporting passes.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	now time.Time
}

// NewFixedClock returns a clock that always reports now.
func NewFixedClock(now time.Time) FixedClock {
	return FixedClock{now: now.UTC()}
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.now
}
