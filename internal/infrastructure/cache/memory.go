// Package cache holds in-process local data sources.
package cache

import (
	"context"
	"sync"

	"github.com/voltride/rental-core/internal/core/domain"
)

// Memory is a keyed in-process cache with no expiry and no size bound. It is
// meant for the handful of entities a client session touches. Values are
// cloned on the way in and out.
type Memory[E domain.Entity[E]] struct {
	mu      sync.RWMutex
	entries map[string]E
}

func NewMemory[E domain.Entity[E]]() *Memory[E] {
	return &Memory[E]{entries: make(map[string]E)}
}

func (m *Memory[E]) Cache(_ context.Context, entity E) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entity.EntityID()] = entity.Clone()
	return nil
}

func (m *Memory[E]) GetCached(_ context.Context, id string) (E, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok {
		var zero E
		return zero, false, nil
	}
	return e.Clone(), true, nil
}

func (m *Memory[E]) Clear(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Len reports the number of cached entries.
func (m *Memory[E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
