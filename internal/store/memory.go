package store

import "sync"

// MemoryStore is an in-process Store used by tests and one-shot commands
// that should not touch the durable cache.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string, v interface{}) error {
	m.mu.RLock()
	data, ok := m.slots[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return unmarshal(data, v)
}

func (m *MemoryStore) Set(key string, v interface{}) error {
	data, err := marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.slots[key] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.slots = make(map[string][]byte)
	m.mu.Unlock()
	return nil
}

// Corrupt overwrites a slot with raw bytes, for exercising the fail-open
// read path in tests.
func (m *MemoryStore) Corrupt(key string, data []byte) {
	m.mu.Lock()
	m.slots[key] = data
	m.mu.Unlock()
}
