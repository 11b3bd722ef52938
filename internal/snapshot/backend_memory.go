package snapshot

import (
	"context"
	"sync"
)

// MemoryBackend keeps slots in process memory. Used in tests and as a
// fallback when no durable backend is configured.
type MemoryBackend struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (b *MemoryBackend) Write(ctx context.Context, key string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	copied := make([]byte, len(payload))
	copy(copied, payload)
	b.slots[key] = copied
	return nil
}

func (b *MemoryBackend) Read(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	payload, ok := b.slots[key]
	if !ok {
		return nil, ErrEmpty
	}
	copied := make([]byte, len(payload))
	copy(copied, payload)
	return copied, nil
}

func (b *MemoryBackend) Clear(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, key)
	return nil
}
