package store

import (
	"bytes"
	"context"
	"sync"
)

type memoryKeyValueStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKeyValueStorage returns a process-local [KeyValueStorage].
// Values are copied on the way in and out.
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{values: make(map[string][]byte)}
}

func (m *memoryKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

func (m *memoryKeyValueStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = bytes.Clone(value)
	return nil
}
