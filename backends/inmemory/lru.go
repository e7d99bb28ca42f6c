// Package inmemory provides in-process descriptor stores with LRU, LFU
// and FIFO eviction policies.
package inmemory

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/botirk38/bowscore/bow"
	"github.com/botirk38/bowscore/types"
)

// LRUBackend implements VectorStore with least-recently-used eviction.
type LRUBackend[K comparable, V any] struct {
	mu    sync.RWMutex
	cache *lru.Cache[K, types.Entry[V]]
	index map[K]bow.Vector
}

// NewLRUBackend creates a new LRU backend.
func NewLRUBackend[K comparable, V any](config types.BackendConfig) (*LRUBackend[K, V], error) {
	cache, err := lru.New[K, types.Entry[V]](config.Capacity)
	if err != nil {
		return nil, err
	}

	return &LRUBackend[K, V]{
		cache: cache,
		index: make(map[K]bow.Vector),
	}, nil
}

// Set stores an entry, evicting the least recently used one at capacity.
func (b *LRUBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Add(key, entry)
	b.index[key] = entry.Vector
	return nil
}

// Get retrieves an entry and marks it recently used.
func (b *LRUBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if entry, ok := b.cache.Get(key); ok {
		return entry, true, nil
	}
	return types.Entry[V]{}, false, nil
}

// Delete removes an entry.
func (b *LRUBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Remove(key)
	delete(b.index, key)
	return nil
}

// Contains checks for key presence without affecting recency.
func (b *LRUBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Contains(key), nil
}

// Flush clears all entries.
func (b *LRUBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Purge()
	b.index = make(map[K]bow.Vector)
	return nil
}

// Len returns the number of entries.
func (b *LRUBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.cache.Len(), nil
}

// Keys returns all keys, dropping index entries the cache has evicted.
func (b *LRUBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := make([]K, 0, b.cache.Len())
	validIndex := make(map[K]bow.Vector, b.cache.Len())
	for key, vec := range b.index {
		if b.cache.Contains(key) {
			keys = append(keys, key)
			validIndex[key] = vec
		}
	}
	b.index = validIndex
	return keys, nil
}

// GetVector retrieves just the descriptor for a key, without affecting
// recency.
func (b *LRUBackend[K, V]) GetVector(ctx context.Context, key K) (bow.Vector, bool, error) {
	b.mu.RLock()
	vec, hasVector := b.index[key]
	cached := b.cache.Contains(key)
	b.mu.RUnlock()

	if hasVector && cached {
		return vec, true, nil
	}

	// evicted behind the index's back
	if hasVector && !cached {
		b.mu.Lock()
		delete(b.index, key)
		b.mu.Unlock()
	}
	return nil, false, nil
}

// Close closes the LRU backend (no-op for in-memory).
func (b *LRUBackend[K, V]) Close() error { return nil }

// SetAsync stores an entry asynchronously.
func (b *LRUBackend[K, V]) SetAsync(ctx context.Context, key K, entry types.Entry[V]) <-chan error {
	return setAsync[K, V](b, ctx, key, entry)
}

// GetAsync retrieves an entry asynchronously.
func (b *LRUBackend[K, V]) GetAsync(ctx context.Context, key K) <-chan types.AsyncGetResult[V] {
	return getAsync[K, V](b, ctx, key)
}

// DeleteAsync removes an entry asynchronously.
func (b *LRUBackend[K, V]) DeleteAsync(ctx context.Context, key K) <-chan error {
	return deleteAsync[K, V](b, ctx, key)
}

// GetBatchAsync retrieves multiple entries asynchronously.
func (b *LRUBackend[K, V]) GetBatchAsync(ctx context.Context, keys []K) <-chan types.AsyncBatchResult[K, V] {
	return getBatchAsync[K, V](b, ctx, keys)
}
