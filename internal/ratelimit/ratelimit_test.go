package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCountsWithinWindow(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := m.Hit(ctx, "1.2.3.4:/api/book", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := m.Hit(ctx, "5.6.7.8:/api/book", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestMemoryResetsAfterWindow(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = m.Hit(ctx, "k", time.Minute)
	_, _ = m.Hit(ctx, "k", time.Minute)

	now = now.Add(time.Minute)
	got, err := m.Hit(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMemorySweepsExpiredBuckets(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = m.Hit(ctx, "a", time.Second)
	now = now.Add(2 * time.Second)
	_, _ = m.Hit(ctx, "b", time.Second)

	assert.Len(t, m.buckets, 1)
}

func TestNewRedisFromURLRejectsGarbage(t *testing.T) {
	_, err := NewRedisFromURL("://nope")
	assert.Error(t, err)
}
