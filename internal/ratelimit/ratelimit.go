// Package ratelimit provides a fixed-window request rate limiter.
//
// The limiter is expressed as a Store interface so single-instance
// deployments can use the in-memory implementation while multi-instance
// deployments share counters through Redis (see internal/cache).
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Store checks and updates a fixed-window counter for a key.
type Store interface {
	// Allow records one request against key and reports whether it fits
	// within limit requests per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is an in-process fixed-window counter map guarded by a
// mutex. Stale entries are swept lazily so the map stays bounded.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry

	// sweepEvery controls how many Allow calls pass between sweeps.
	sweepEvery int
	sinceSweep int

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]*entry),
		sweepEvery: 1024,
		now:        time.Now,
	}
}

// Allow implements Store.
func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.sinceSweep++
	if s.sinceSweep >= s.sweepEvery {
		s.sweep(now)
		s.sinceSweep = 0
	}

	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(window)}
		s.entries[key] = e
		return Result{
			Allowed:   true,
			Remaining: limit - 1,
			ResetAt:   e.resetAt,
		}, nil
	}

	if e.count >= limit {
		return Result{
			Allowed:    false,
			Remaining:  0,
			ResetAt:    e.resetAt,
			RetryAfter: e.resetAt.Sub(now),
		}, nil
	}

	e.count++
	return Result{
		Allowed:   true,
		Remaining: limit - e.count,
		ResetAt:   e.resetAt,
	}, nil
}

// sweep drops entries whose window has passed. Caller holds the lock.
func (s *MemoryStore) sweep(now time.Time) {
	for key, e := range s.entries {
		if now.After(e.resetAt) {
			delete(s.entries, key)
		}
	}
}
