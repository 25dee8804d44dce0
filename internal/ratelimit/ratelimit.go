package ratelimit

import (
	"context"
	"log"
	"sync"
	"time"
)

// Limiter is a fixed-window per-identity request counter.
//
// Algorithm: first request creates a record with count=1 and allows. While the
// window is open, a request at or over the limit is denied without
// incrementing; otherwise the count increments and the request is allowed.
// A request after the window expired resets the record and is allowed.
//
// This is deliberately a fixed window, not a token bucket: adjacent windows
// can admit up to twice the limit at the boundary. Callers rely on the exact
// reset/deny semantics above.

type record struct {
	count       int
	windowStart time.Time
}

type Limiter struct {
	mu      sync.Mutex
	records map[string]*record

	window time.Duration
	limit  int

	now func() time.Time
}

const (
	DefaultWindow = 5 * time.Minute
	DefaultLimit  = 3
)

func NewLimiter(window time.Duration, limit int) *Limiter {
	return &Limiter{
		records: make(map[string]*record),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

// CheckAndRecord atomically applies the fixed-window algorithm for identity
// and reports whether the request is allowed.
func (l *Limiter) CheckAndRecord(identity string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.records[identity]
	if !ok {
		l.records[identity] = &record{count: 1, windowStart: now}
		return true
	}

	if now.Sub(r.windowStart) > l.window {
		r.count = 1
		r.windowStart = now
		return true
	}

	if r.count >= l.limit {
		return false
	}

	r.count++
	return true
}

// StartSweep periodically evicts records whose window already expired so the map
// stays bounded. It returns immediately; eviction runs until ctx is done.
func (l *Limiter) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				evicted := l.sweep()
				if evicted > 0 {
					log.Printf("[ratelimit][sweep] evicted=%d remaining=%d", evicted, l.size())
				}
			}
		}
	}()
}

func (l *Limiter) sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for identity, r := range l.records {
		if now.Sub(r.windowStart) > l.window {
			delete(l.records, identity)
			evicted++
		}
	}
	return evicted
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
