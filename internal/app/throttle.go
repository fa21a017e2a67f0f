package app

import "time"

// Throttle lets an event through at most once per interval.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// NewThrottle creates a throttle. A non-positive interval never blocks.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Allow reports whether an event at now may fire, and records it if so.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
