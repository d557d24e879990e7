package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGeneratorUsesClock(t *testing.T) {
	fixed := time.UnixMilli(1767225600000)
	g := NewIDGenerator(func() time.Time { return fixed })
	assert.Equal(t, "STEFAN-1767225600000", g.Next())
}

func TestIDGeneratorMonotonicOnFrozenClock(t *testing.T) {
	fixed := time.UnixMilli(1000)
	g := NewIDGenerator(func() time.Time { return fixed })

	assert.Equal(t, "STEFAN-1000", g.Next())
	assert.Equal(t, "STEFAN-1001", g.Next())
	assert.Equal(t, "STEFAN-1002", g.Next())
}

func TestIDGeneratorClockGoesBackwards(t *testing.T) {
	times := []int64{5000, 4000, 6000}
	i := 0
	g := NewIDGenerator(func() time.Time {
		ts := time.UnixMilli(times[i])
		i++
		return ts
	})

	assert.Equal(t, "STEFAN-5000", g.Next())
	assert.Equal(t, "STEFAN-5001", g.Next())
	assert.Equal(t, "STEFAN-6000", g.Next())
}

func TestIDGeneratorConcurrentUnique(t *testing.T) {
	g := NewIDGenerator(nil)
	const n = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, seen, n)
}
