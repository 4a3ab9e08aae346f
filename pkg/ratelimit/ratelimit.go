package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a keyed request may proceed. Implementations must
// be safe for concurrent use. The in-memory variant suits a single instance;
// the redis variant shares state across instances.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type bucket struct {
	tokens float64
	ts     time.Time
}

// MemoryLimiter is a per-key token bucket refilled at rate tokens/second up
// to burst.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64
	burst   float64
	now     func() time.Time
}

func NewMemoryLimiter(rate float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   float64(burst),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.burst, ts: now}
		l.buckets[key] = b
	} else {
		delta := now.Sub(b.ts).Seconds()
		if delta < 0 {
			delta = 0
		}
		b.tokens += delta * l.rate
		if b.tokens > l.burst {
			b.tokens = l.burst
		}
		b.ts = now
	}

	if b.tokens < 1 {
		return false, nil
	}
	b.tokens--
	return true, nil
}
