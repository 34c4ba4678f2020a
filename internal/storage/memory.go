package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory KV implementation for tests. The error hooks
// let tests inject failures on individual operations.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string

	// When non-nil, the matching operation returns this error instead
	// of touching the map.
	GetErr   error
	SetErr   error
	ClearErr error
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if m.GetErr != nil {
		return "", false, m.GetErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if m.SetErr != nil {
		return m.SetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// SetAll stores every entry; with no failure injection the map update is
// all-or-nothing by construction.
func (m *MemoryKV) SetAll(ctx context.Context, values map[string]string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if m.SetErr != nil {
		return m.SetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, value := range values {
		m.values[key] = value
	}
	return nil
}

// Clear removes every key.
func (m *MemoryKV) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if m.ClearErr != nil {
		return m.ClearErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	return nil
}

// Close is a no-op.
func (m *MemoryKV) Close() error {
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
