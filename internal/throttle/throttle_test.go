package throttle

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// newTestLimiter builds a limiter with a controllable clock and no janitor.
func newTestLimiter(max int, window time.Duration) (*MemoryLimiter, *time.Time) {
	current := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	l := &MemoryLimiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     func() time.Time { return current },
	}
	return l, &current
}

func TestAllow(t *testing.T) {
	t.Run("sixth attempt within window is rejected", func(t *testing.T) {
		l, _ := newTestLimiter(5, 15*time.Minute)

		for i := 1; i <= 5; i++ {
			if !l.Allow("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i)
			}
		}
		if l.Allow("10.0.0.1") {
			t.Error("sixth attempt should be rejected")
		}
		// Still rejected on a later retry inside the window.
		if l.Allow("10.0.0.1") {
			t.Error("seventh attempt should be rejected")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(5, 15*time.Minute)

		for i := 0; i < 6; i++ {
			l.Allow("10.0.0.1")
		}
		if !l.Allow("10.0.0.2") {
			t.Error("other clients must not be affected")
		}
	})

	t.Run("counter resets after window elapses", func(t *testing.T) {
		l, clock := newTestLimiter(5, 15*time.Minute)

		for i := 0; i < 6; i++ {
			l.Allow("10.0.0.1")
		}
		*clock = clock.Add(15 * time.Minute)

		for i := 1; i <= 5; i++ {
			if !l.Allow("10.0.0.1") {
				t.Fatalf("attempt %d after window should be allowed", i)
			}
		}
		if l.Allow("10.0.0.1") {
			t.Error("ceiling applies again after the reset")
		}
	})

	t.Run("rejected attempts do not extend the window", func(t *testing.T) {
		l, clock := newTestLimiter(5, 15*time.Minute)

		for i := 0; i < 5; i++ {
			l.Allow("10.0.0.1")
		}
		// Hammering while locked out must not push lastAttempt forward.
		for i := 0; i < 10; i++ {
			*clock = clock.Add(time.Minute)
			l.Allow("10.0.0.1")
		}
		*clock = clock.Add(5 * time.Minute) // 15 minutes past the last counted attempt
		if !l.Allow("10.0.0.1") {
			t.Error("window should be measured from the last counted attempt")
		}
	})
}

func TestReset(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 6; i++ {
		l.Allow("10.0.0.1")
	}
	l.Reset("10.0.0.1")

	if !l.Allow("10.0.0.1") {
		t.Error("reset should clear the attempt count")
	}
}

func TestAllowConcurrent(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("10.0.0.1") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 5 {
		t.Errorf("expected exactly 5 allowed attempts, got %d", allowed)
	}
}

func TestJanitorEviction(t *testing.T) {
	l, clock := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 100; i++ {
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	*clock = clock.Add(30 * time.Minute)

	// Run one janitor sweep by hand; the production goroutine does the same.
	l.mu.Lock()
	now := l.now()
	for key, e := range l.entries {
		if now.Sub(e.lastAttempt) >= 2*l.window {
			delete(l.entries, key)
		}
	}
	remaining := len(l.entries)
	l.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected all idle entries evicted, %d left", remaining)
	}
}
