package kv

import "context"

// Memory is a map-backed Store for tests and ephemeral runs.
type Memory struct {
	data map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
