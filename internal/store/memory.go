package store

import (
	"context"
	"sync"
)

// Memory is a non-durable Store used in tests and as a safe default.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (m *Memory) Save(ctx context.Context, key string, data []byte) error {
	_ = ctx

	cp := make([]byte, len(data))
	copy(cp, data)

	m.mu.Lock()
	m.data[key] = cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) String() string { return "memory" }
