// Package ratelimit implements a small in-memory sliding-window request
// limiter keyed by client address. It carries no framework dependency; the
// HTTP adapter lives in internal/middleware.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts accepted attempts per key over a rolling window. The counter
// map is the only shared mutable state in the process and is guarded by a
// single mutex.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time

	now func() time.Time // overridable in tests
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:    max,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether key may proceed, consuming one slot when it does.
// Rejected attempts consume nothing, so a client locked out mid-window is
// admitted again as soon as old entries roll off.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.max {
		l.hits[key] = recent
		return false
	}

	l.hits[key] = append(recent, now)
	return true
}

// Sweep drops keys whose entries have all expired. Called periodically so the
// map does not grow with every address ever seen.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for key, times := range l.hits {
		expired := true
		for _, t := range times {
			if t.After(cutoff) {
				expired = false
				break
			}
		}
		if expired {
			delete(l.hits, key)
		}
	}
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}
