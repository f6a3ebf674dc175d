package store

import (
	"context"
	"sync"
)

// Memory is a non-durable store, content is lost on restart
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory makes an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	res := make([]byte, len(v))
	copy(res, v)
	return res, true, nil
}

// Set stores a copy of value under key
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.mu.Lock()
	m.data[key] = v
	m.mu.Unlock()
	return nil
}

// Clear removes all keys
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.data = make(map[string][]byte)
	m.mu.Unlock()
	return nil
}

// Close does nothing for memory store
func (m *Memory) Close() error { return nil }
