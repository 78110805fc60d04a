package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(time.Minute, 0)

	c.Set(ctx, "ukm:1", "value")
	v, ok := c.Get(ctx, "ukm:1")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	c.Delete(ctx, "ukm:1")
	_, ok = c.Get(ctx, "ukm:1")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(time.Minute, 0)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(ctx, "k", 1)
	now = now.Add(59 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)

	c.evictExpired()
	assert.Equal(t, 0, c.Len())
}

func TestDeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(time.Minute, 0)

	c.Set(ctx, "ukm:list", 1)
	c.Set(ctx, "ukm:1", 1)
	c.Set(ctx, "other", 1)

	c.DeletePrefix(ctx, "ukm:")

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(ctx, "other")
	assert.True(t, ok)
}

func TestCleanupStops(t *testing.T) {
	c := NewInMemoryCache(time.Millisecond, time.Millisecond)
	c.StartCleanup(context.Background())
	c.Set(context.Background(), "k", 1)

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)

	c.StopCleanup()
	c.StopCleanup()
}
