package checkpoint

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store used in tests and for embedded runs.
type MemoryStore struct {
	mu    sync.RWMutex
	rows  map[string][]*Checkpoint // thread_id → rows in save order
	order []string                 // thread ids in first-seen order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string][]*Checkpoint)}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, cp *Checkpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, seen := m.rows[cp.ThreadID]; !seen {
		m.order = append(m.order, cp.ThreadID)
	}
	m.rows[cp.ThreadID] = append(m.rows[cp.ThreadID], cp)
	return nil
}

// Latest implements Store.
func (m *MemoryStore) Latest(_ context.Context, threadID string) (*Checkpoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	chain := m.rows[threadID]
	if len(chain) == 0 {
		return nil, ErrNotFound
	}
	return chain[len(chain)-1], nil
}

// ListLatest implements Store.
func (m *MemoryStore) ListLatest(_ context.Context, workspaceID string, limit int) ([]*Checkpoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Checkpoint
	for _, threadID := range m.order {
		chain := m.rows[threadID]
		latest := chain[len(chain)-1]
		if workspaceID != "" && latest.WorkspaceID != workspaceID {
			continue
		}
		out = append(out, latest)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TS.After(out[j].TS) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Chain returns the full chain for a thread, oldest first. Test helper.
func (m *MemoryStore) Chain(threadID string) []*Checkpoint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Checkpoint(nil), m.rows[threadID]...)
}
