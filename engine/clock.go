package engine

import (
	"sync"
	"time"
)

// Clock supplies time and frame pacing to the runner
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// NewSystemClock creates a wall clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// After waits for d on a real timer
func (c *SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// MockClock provides a controllable time source for testing
// After fires immediately and advances the mocked time by the requested duration
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	waits       []time.Duration
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// After advances the mocked time by d and returns an already-fired channel
func (m *MockClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.waits = append(m.waits, d)

	ch := make(chan time.Time, 1)
	ch <- m.currentTime
	return ch
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Waits returns every duration passed to After
func (m *MockClock) Waits() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.waits))
	copy(out, m.waits)
	return out
}
