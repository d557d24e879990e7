package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Counter counts hits per key inside a fixed window that starts at the
// first hit.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type Memory struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count int64
	reset time.Time
}

func NewMemory() *Memory {
	return &Memory{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *Memory) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	b, ok := m.buckets[key]
	if !ok || !now.Before(b.reset) {
		m.sweep(now)
		m.buckets[key] = &bucket{count: 1, reset: now.Add(window)}
		return 1, nil
	}
	b.count++
	return b.count, nil
}

// sweep drops expired buckets so idle clients do not pile up.
func (m *Memory) sweep(now time.Time) {
	for k, b := range m.buckets {
		if !now.Before(b.reset) {
			delete(m.buckets, k)
		}
	}
}
