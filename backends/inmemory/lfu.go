package inmemory

import (
	"context"
	"math"
	"sync"

	"github.com/botirk38/bowscore/bow"
	"github.com/botirk38/bowscore/types"
)

// lfuEntry wraps an entry with frequency tracking.
type lfuEntry[V any] struct {
	entry     types.Entry[V]
	frequency int
}

// LFUBackend implements VectorStore with least-frequently-used eviction.
type LFUBackend[K comparable, V any] struct {
	mu       sync.RWMutex
	entries  map[K]*lfuEntry[V]
	index    map[K]bow.Vector
	capacity int
}

// NewLFUBackend creates a new LFU backend.
func NewLFUBackend[K comparable, V any](config types.BackendConfig) (*LFUBackend[K, V], error) {
	return &LFUBackend[K, V]{
		entries:  make(map[K]*lfuEntry[V]),
		index:    make(map[K]bow.Vector),
		capacity: config.Capacity,
	}, nil
}

// Set stores an entry, evicting the least frequently used one at
// capacity. Updating an existing key counts as a use.
func (b *LFUBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.entries[key]; ok {
		existing.entry = entry
		existing.frequency++
		b.index[key] = entry.Vector
		return nil
	}

	if len(b.entries) >= b.capacity && b.capacity > 0 {
		b.evict()
	}

	b.entries[key] = &lfuEntry[V]{entry: entry, frequency: 1}
	b.index[key] = entry.Vector
	return nil
}

// evict removes the least frequently used entry. Caller holds the lock.
func (b *LFUBackend[K, V]) evict() {
	var victim K
	minFreq := math.MaxInt

	for key, e := range b.entries {
		if e.frequency < minFreq {
			minFreq = e.frequency
			victim = key
		}
	}

	delete(b.entries, victim)
	delete(b.index, victim)
}

// Get retrieves an entry and increments its frequency.
func (b *LFUBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.entries[key]; ok {
		e.frequency++
		return e.entry, true, nil
	}
	return types.Entry[V]{}, false, nil
}

// Delete removes an entry.
func (b *LFUBackend[K, V]) Delete(ctx context.Context, key K) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.entries, key)
	delete(b.index, key)
	return nil
}

// Contains checks for key presence without incrementing frequency.
func (b *LFUBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.entries[key]
	return ok, nil
}

// Flush clears all entries.
func (b *LFUBackend[K, V]) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[K]*lfuEntry[V])
	b.index = make(map[K]bow.Vector)
	return nil
}

// Len returns the number of entries.
func (b *LFUBackend[K, V]) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries), nil
}

// Keys returns all keys.
func (b *LFUBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]K, 0, len(b.index))
	for key := range b.index {
		keys = append(keys, key)
	}
	return keys, nil
}

// GetVector retrieves just the descriptor for a key, without
// incrementing frequency.
func (b *LFUBackend[K, V]) GetVector(ctx context.Context, key K) (bow.Vector, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if vec, ok := b.index[key]; ok {
		return vec, true, nil
	}
	return nil, false, nil
}

// Close closes the LFU backend (no-op for in-memory).
func (b *LFUBackend[K, V]) Close() error { return nil }

// SetAsync stores an entry asynchronously.
func (b *LFUBackend[K, V]) SetAsync(ctx context.Context, key K, entry types.Entry[V]) <-chan error {
	return setAsync[K, V](b, ctx, key, entry)
}

// GetAsync retrieves an entry asynchronously.
func (b *LFUBackend[K, V]) GetAsync(ctx context.Context, key K) <-chan types.AsyncGetResult[V] {
	return getAsync[K, V](b, ctx, key)
}

// DeleteAsync removes an entry asynchronously.
func (b *LFUBackend[K, V]) DeleteAsync(ctx context.Context, key K) <-chan error {
	return deleteAsync[K, V](b, ctx, key)
}

// GetBatchAsync retrieves multiple entries asynchronously.
func (b *LFUBackend[K, V]) GetBatchAsync(ctx context.Context, keys []K) <-chan types.AsyncBatchResult[K, V] {
	return getBatchAsync[K, V](b, ctx, keys)
}
