//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"dakar-rentals/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now().Add(-time.Second)
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(clock.Precision))
	assert.True(t, now.After(before))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	c := clock.NewMockClock(start)
	assert.Equal(t, start, c.Now())

	c.Add(72 * time.Hour)
	assert.Equal(t, time.Date(2024, 5, 4, 9, 30, 0, 0, time.UTC), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestMockClock_ConcurrentReaders(t *testing.T) {
	c := clock.NewMockClock(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Now()
		}()
		go func() {
			defer wg.Done()
			c.Add(time.Minute)
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2024, 5, 1, 0, 8, 0, 0, time.UTC), c.Now())
}
