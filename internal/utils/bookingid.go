package utils

import (
	"strconv"
	"sync"
	"time"

	"stefan-booking/internal/models"
)

// IDGenerator issues "STEFAN-<unix millis>" ids. Values never repeat within
// a process: when the clock has not moved past the last issued value, the
// last value plus one is used instead.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return models.BookingIDPrefix + strconv.FormatInt(ms, 10)
}
