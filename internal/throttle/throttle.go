// Package throttle provides an in-process attempt limiter for the login
// endpoints, keyed by client address. It is best-effort by design: state
// lives in memory, resets on process restart, and does not coordinate
// across instances. Multi-instance deployments need a shared external
// store behind the same interface.
package throttle

import (
	"sync"
	"time"
)

// Limiter counts login attempts per key within a rolling window.
type Limiter interface {
	// Allow records an attempt for key and reports whether it may proceed.
	// Attempts rejected over the ceiling are not recorded.
	Allow(key string) bool
	// Reset clears the entry for key, typically after a successful login.
	Reset(key string)
}

type entry struct {
	count       int
	lastAttempt time.Time
}

// MemoryLimiter is the in-process Limiter implementation.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	now     func() time.Time // overridable in tests
}

// NewMemoryLimiter creates a limiter allowing max attempts per window.
// A background janitor evicts entries that have been idle for two windows,
// keeping the table bounded.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
	go l.janitor()
	return l
}

// Allow implements Limiter. A fresh key, or one whose window has elapsed,
// starts over at count 1. Within the window the count increments until the
// ceiling is reached; attempts beyond it are rejected without touching the
// entry, so the window is anchored to the last counted attempt.
func (l *MemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.lastAttempt) >= l.window {
		l.entries[key] = &entry{count: 1, lastAttempt: now}
		return true
	}

	if e.count >= l.max {
		return false
	}
	e.count++
	e.lastAttempt = now
	return true
}

// Reset implements Limiter.
func (l *MemoryLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

func (l *MemoryLimiter) janitor() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := l.now()
		for key, e := range l.entries {
			if now.Sub(e.lastAttempt) >= 2*l.window {
				delete(l.entries, key)
			}
		}
		l.mu.Unlock()
	}
}
