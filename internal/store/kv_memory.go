package store

import (
	"context"
	"sync"
)

// memoryKeyValueStore keeps values in a process-local map. It is selected
// by the ":memory:" DSN and backs the service tests.
type memoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValueStore returns an empty in-memory [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{values: make(map[string]string)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryKeyValueStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
