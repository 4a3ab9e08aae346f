package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	now := time.Now()
	l := NewMemoryLimiter(1, 2)
	l.now = func() time.Time { return now }

	ctx := context.Background()

	ok, err := l.Allow(ctx, "user:1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, _ = l.Allow(ctx, "user:1")
	assert.True(t, ok)

	// burst exhausted
	ok, _ = l.Allow(ctx, "user:1")
	assert.False(t, ok)

	// other keys keep their own bucket
	ok, _ = l.Allow(ctx, "user:2")
	assert.True(t, ok)

	// one token refilled after one second
	now = now.Add(time.Second)
	ok, _ = l.Allow(ctx, "user:1")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "user:1")
	assert.False(t, ok)
}

func TestMemoryLimiter_RefillCap(t *testing.T) {
	now := time.Now()
	l := NewMemoryLimiter(10, 3)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, _ := l.Allow(ctx, "k")
		assert.True(t, ok)
	}

	// a long idle period refills to burst, never beyond
	now = now.Add(time.Hour)
	allowed := 0
	for i := 0; i < 10; i++ {
		if ok, _ := l.Allow(ctx, "k"); ok {
			allowed++
		}
	}
	assert.Equal(t, 3, allowed)
}
