package store

import (
	"context"
	"sync"

	"stefan-booking/internal/models"
)

// Memory is an append-only, process-lifetime booking list.
type Memory struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(ctx context.Context, booking models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.bookings = append(m.bookings, booking)
	m.mu.Unlock()
	return nil
}

// List returns a copy of all bookings in insertion order.
func (m *Memory) List(ctx context.Context) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}
