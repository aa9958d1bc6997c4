package lead

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps leads in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	leads map[string]Lead
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{leads: make(map[string]Lead)}
}

func (m *MemoryStore) Save(_ context.Context, l Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads[l.ID] = l
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.leads[id]
	if !ok {
		return Lead{}, ErrNotFound
	}
	return l, nil
}

func (m *MemoryStore) List(_ context.Context, limit int) ([]Lead, error) {
	m.mu.RLock()
	leads := make([]Lead, 0, len(m.leads))
	for _, l := range m.leads {
		leads = append(leads, l)
	}
	m.mu.RUnlock()

	sortNewestFirst(leads)
	if limit > 0 && len(leads) > limit {
		leads = leads[:limit]
	}
	return leads, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.leads[id]; !ok {
		return ErrNotFound
	}
	delete(m.leads, id)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

func sortNewestFirst(leads []Lead) {
	sort.Slice(leads, func(i, j int) bool {
		if leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].ID > leads[j].ID
		}
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}
