package clock

import "time"

// Clock abstracts time lookup so order timestamps are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a test clock with a settable current time.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock frozen at startTime.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the mock clock to t.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
