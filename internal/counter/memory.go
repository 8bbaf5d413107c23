// Package counter keeps the API's shared counter.
package counter

import (
	"context"
	"sync"
)

// Memory is a counter held in process memory.
// It is used when the API runs without a database.
type Memory struct {
	mu    sync.Mutex
	count int64
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count, nil
}

func (m *Memory) Add(ctx context.Context, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count += delta
	return m.count, nil
}

func (m *Memory) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = 0
	return nil
}
