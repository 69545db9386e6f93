package storage

import (
	"context"
	"sync"
)

// MemoryStore is a KV kept in process memory. Writes can be made to fail
// by setting FailPuts.
type MemoryStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	puts     int
	FailPuts bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPuts {
		return ErrUnavailable
	}
	m.data[key] = append([]byte(nil), value...)
	m.puts++
	return nil
}

// Puts returns how many writes have succeeded.
func (m *MemoryStore) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
