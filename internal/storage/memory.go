package storage

import "sort"

// Memory is a map-backed KV for tests and ephemeral sessions. Nothing
// survives the process.
type Memory struct {
	data map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Read returns the value stored under key, or ErrNotFound.
func (m *Memory) Read(key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Write stores a copy of value under key.
func (m *Memory) Write(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Scan visits every pair in ascending key order.
func (m *Memory) Scan(fn func(key string, value []byte) error) error {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := fn(key, m.data[key]); err != nil {
			return err
		}
	}
	return nil
}
