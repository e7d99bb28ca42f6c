package inmemory

import (
	"context"
	"sync"

	"github.com/botirk38/bowscore/bow"
	"github.com/botirk38/bowscore/types"
)

// FIFOBackend implements VectorStore with first-in-first-out eviction.
type FIFOBackend[K comparable, V any] struct {
	mu       sync.RWMutex
	entries  map[K]types.Entry[V]
	index    map[K]bow.Vector
	queue    []K
	capacity int
}

// NewFIFOBackend creates a new FIFO backend.
func NewFIFOBackend[K comparable, V any](config types.BackendConfig) (*FIFOBackend[K, V], error) {
	return &FIFOBackend[K, V]{
		entries:  make(map[K]types.Entry[V]),
		index:    make(map[K]bow.Vector),
		queue:    make([]K, 0, config.Capacity),
		capacity: config.Capacity,
	}, nil
}

// Set stores an entry, evicting the oldest one at capacity. Updating
// an existing key keeps its queue position.
func (b *FIFOBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.entries[key]; ok {
		b.entries[key] = entry
		b.index[key] = entry.Vector
		return nil
	}

	if len(b.entries) >= b.capacity && b.capacity > 0 {
		oldest := b.queue[0]
		b.queue = b.queue[1:]
		delete(b.entries, oldest)
		delete(b.index, oldest)
	}

	b.entries[key] = entry
	b.index[key] = entry.Vector
	b.queue = append(b.queue, key)
	return nil
}

// Get retrieves an entry.
func (b *FIFOBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if entry, ok := b.entries[key]; ok {
		return entry, true, nil
	}
	return types.Entry[V]{}, false, nil
}

// Delete removes an entry and its queue position.
func (b *FIFOBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.entries[key]; !ok {
		return nil
	}

	delete(b.entries, key)
	delete(b.index, key)
	for i, qKey := range b.queue {
		if qKey == key {
			b.queue = append(b.queue[:i], b.queue[i+1:]...)
			break
		}
	}
	return nil
}

// Contains checks for key presence.
func (b *FIFOBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.entries[key]
	return ok, nil
}

// Flush clears all entries.
func (b *FIFOBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[K]types.Entry[V])
	b.index = make(map[K]bow.Vector)
	b.queue = make([]K, 0, b.capacity)
	return nil
}

// Len returns the number of entries.
func (b *FIFOBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries), nil
}

// Keys returns all keys.
func (b *FIFOBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]K, 0, len(b.index))
	for key := range b.index {
		keys = append(keys, key)
	}
	return keys, nil
}

// GetVector retrieves just the descriptor for a key.
func (b *FIFOBackend[K, V]) GetVector(ctx context.Context, key K) (bow.Vector, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if vec, ok := b.index[key]; ok {
		return vec, true, nil
	}
	return nil, false, nil
}

// Close closes the FIFO backend (no-op for in-memory).
func (b *FIFOBackend[K, V]) Close() error { return nil }

// SetAsync stores an entry asynchronously.
func (b *FIFOBackend[K, V]) SetAsync(ctx context.Context, key K, entry types.Entry[V]) <-chan error {
	return setAsync[K, V](b, ctx, key, entry)
}

// GetAsync retrieves an entry asynchronously.
func (b *FIFOBackend[K, V]) GetAsync(ctx context.Context, key K) <-chan types.AsyncGetResult[V] {
	return getAsync[K, V](b, ctx, key)
}

// DeleteAsync removes an entry asynchronously.
func (b *FIFOBackend[K, V]) DeleteAsync(ctx context.Context, key K) <-chan error {
	return deleteAsync[K, V](b, ctx, key)
}

// GetBatchAsync retrieves multiple entries asynchronously.
func (b *FIFOBackend[K, V]) GetBatchAsync(ctx context.Context, keys []K) <-chan types.AsyncBatchResult[K, V] {
	return getBatchAsync[K, V](b, ctx, keys)
}
