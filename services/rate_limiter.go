package services

import (
	"sync"
	"time"
)

// RateLimiter is a fixed-window gate: at most maxRequests calls per rolling
// window. It lives in process memory only, so it resets on restart and is
// never shared across instances. Construct one per application session and
// inject it; there is no package-level singleton.
type RateLimiter struct {
	maxRequests int
	window      time.Duration

	mu         sync.Mutex
	timestamps []time.Time
	now        func() time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow reports whether another request may proceed right now. Denied
// attempts are not recorded against the window.
func (l *RateLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.now()
	cutoff := t.Add(-l.window)

	// Drop timestamps strictly older than the window start.
	kept := l.timestamps[:0]
	for _, ts := range l.timestamps {
		if !ts.Before(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.timestamps = kept

	if len(l.timestamps) >= l.maxRequests {
		return false
	}
	l.timestamps = append(l.timestamps, t)
	return true
}
