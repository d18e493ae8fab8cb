// Package clock supplies booking timestamps (created_at, updated_at).
package clock

import (
	"sync"
	"time"
)

// Precision matches timestamptz so a booking returned by Create compares
// equal to the same booking read back from any store.
const Precision = time.Microsecond

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now is UTC, truncated to Precision.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}

// MockClock is safe for use by concurrent transitions in tests.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
