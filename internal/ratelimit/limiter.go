// Package ratelimit provides a per-user sliding-window admission gate.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most limit requests per user within a trailing window.
// It is safe for concurrent use; the prune+check+append sequence runs under
// a single lock so two racing calls cannot both slip under the cap.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	seen   map[int64][]time.Time
	now    func() time.Time
}

// New creates a limiter admitting limit requests per window per user.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		seen:   map[int64][]time.Time{},
		now:    time.Now,
	}
}

// Admit reports whether the user may proceed. On admission the current
// timestamp is recorded; on rejection nothing is recorded.
func (l *Limiter) Admit(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.seen[userID][:0]
	for _, t := range l.seen[userID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.seen[userID] = kept
		return false
	}

	l.seen[userID] = append(kept, now)
	return true
}
