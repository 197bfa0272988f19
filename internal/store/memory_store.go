package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store. State is lost on Close.
type MemoryStore struct {
	mu      sync.RWMutex
	kv      map[string]string
	history []HistoryEntry
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.kv[key]
	return Entry{Value: v, Found: ok}, nil
}

func (m *MemoryStore) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, key)
	return nil
}

func (m *MemoryStore) AppendHistory(expression, result string) (HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := HistoryEntry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	m.history = append(m.history, e)
	return e, nil
}

func (m *MemoryStore) RecentHistory(limit int) ([]HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]HistoryEntry, 0, n)
	for i := len(m.history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.history[i])
	}
	return out, nil
}

func (m *MemoryStore) ClearHistory() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
