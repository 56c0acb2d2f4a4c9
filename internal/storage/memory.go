package storage

import (
	"sync"

	"github.com/terraincognita07/fitplanner/internal/services"
)

var _ services.SessionBackend = (*MemoryBackend)(nil)

// MemoryBackend keeps session values in a process-local map. Values are
// copied on the way in and out.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (b *MemoryBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.values == nil {
		b.values = make(map[string][]byte)
	}
	return nil
}

func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.values[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (b *MemoryBackend) Put(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.values == nil {
		b.values = make(map[string][]byte)
	}
	b.values[key] = cloneBytes(value)
	return nil
}

func (b *MemoryBackend) Delete(keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, key := range keys {
		delete(b.values, key)
	}
	return nil
}

func cloneBytes(value []byte) []byte {
	cloned := make([]byte, len(value))
	copy(cloned, value)
	return cloned
}
