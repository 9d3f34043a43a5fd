package storage

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps documents in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func memoryKey(snapshot, name string) string {
	return snapshot + "/" + name
}

func (m *MemoryStore) Write(_ context.Context, snapshot, name string, data []byte) error {
	if err := ValidateKey(snapshot, name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[memoryKey(snapshot, name)] = slices.Clone(data)
	return nil
}

func (m *MemoryStore) Read(_ context.Context, snapshot, name string) ([]byte, error) {
	if err := ValidateKey(snapshot, name); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[memoryKey(snapshot, name)]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", snapshot, name, ErrDocumentNotFound)
	}
	return slices.Clone(data), nil
}

func (m *MemoryStore) List(_ context.Context, snapshot string) ([]string, error) {
	if err := ValidatePath(snapshot); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := snapshot + "/"
	var names []string
	for key := range m.docs {
		if name, ok := strings.CutPrefix(key, prefix); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
