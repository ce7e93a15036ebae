// Package remote holds the in-memory stand-ins for the remote system of
// record used in development and tests.
package remote

import (
	"context"
	"sync"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// MemoryStore is an authoritative store kept in memory. Every call waits for
// the configured latency first to mimic a network round-trip; the wait is
// abandoned when ctx is cancelled.
type MemoryStore[E domain.Entity[E]] struct {
	latency time.Duration

	mu      sync.RWMutex
	records map[string]E
}

func NewMemoryStore[E domain.Entity[E]](latency time.Duration) *MemoryStore[E] {
	return &MemoryStore[E]{latency: latency, records: make(map[string]E)}
}

// Seed stores entities without simulated latency.
func (s *MemoryStore[E]) Seed(entities ...E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		s.records[e.EntityID()] = e.Clone()
	}
}

func (s *MemoryStore[E]) GetByID(ctx context.Context, id string) (E, bool, error) {
	var zero E
	if err := s.wait(ctx); err != nil {
		return zero, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[id]
	if !ok {
		return zero, false, nil
	}
	return e.Clone(), true, nil
}

func (s *MemoryStore[E]) Create(ctx context.Context, entity E) error {
	return s.upsert(ctx, entity)
}

func (s *MemoryStore[E]) Update(ctx context.Context, entity E) error {
	return s.upsert(ctx, entity)
}

// List returns every stored record in no particular order.
func (s *MemoryStore[E]) List(ctx context.Context) ([]E, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, 0, len(s.records))
	for _, e := range s.records {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *MemoryStore[E]) upsert(ctx context.Context, entity E) error {
	if entity.EntityID() == "" {
		return domain.ErrMissingID
	}
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[entity.EntityID()] = entity.Clone()
	return nil
}

func (s *MemoryStore[E]) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
