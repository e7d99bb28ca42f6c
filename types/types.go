// Package types defines the shared types used across bowscore packages.
package types

import (
	"context"

	"github.com/botirk38/bowscore/bow"
)

// Entry holds a bag-of-words descriptor and its associated value.
type Entry[V any] struct {
	Vector bow.Vector
	Value  V
}

// VectorStore defines the interface for descriptor storage backends.
// This allows for pluggable storage systems including in-memory and Redis.
type VectorStore[K comparable, V any] interface {
	// Set stores a value with its descriptor in the store
	Set(ctx context.Context, key K, entry Entry[V]) error

	// Get retrieves an entry by key
	Get(ctx context.Context, key K) (Entry[V], bool, error)

	// Delete removes an entry by key
	Delete(ctx context.Context, key K) error

	// Contains checks if a key exists without retrieving the value
	Contains(ctx context.Context, key K) (bool, error)

	// Flush clears all entries from the store
	Flush(ctx context.Context) error

	// Len returns the number of entries in the store
	Len(ctx context.Context) (int, error)

	// Keys returns all keys in the store
	Keys(ctx context.Context) ([]K, error)

	// GetVector retrieves just the descriptor for a key
	GetVector(ctx context.Context, key K) (bow.Vector, bool, error)

	// Close closes the backend and releases resources
	Close() error

	// Async operations
	// SetAsync stores a value asynchronously
	SetAsync(ctx context.Context, key K, entry Entry[V]) <-chan error

	// GetAsync retrieves an entry asynchronously
	GetAsync(ctx context.Context, key K) <-chan AsyncGetResult[V]

	// DeleteAsync removes an entry asynchronously
	DeleteAsync(ctx context.Context, key K) <-chan error

	// GetBatchAsync retrieves multiple entries asynchronously
	GetBatchAsync(ctx context.Context, keys []K) <-chan AsyncBatchResult[K, V]
}

// AsyncGetResult holds the result of an async Get operation at the backend level.
type AsyncGetResult[V any] struct {
	Entry Entry[V]
	Found bool
	Error error
}

// AsyncBatchResult holds the result of an async batch operation.
type AsyncBatchResult[K comparable, V any] struct {
	Entries map[K]Entry[V]
	Error   error
}

// BackendConfig provides configuration options for backends
type BackendConfig struct {
	// For in-memory stores
	Capacity int

	// For Redis
	ConnectionString string
	Username         string
	Password         string
	Database         int

	// Additional options
	Options map[string]any
}

// BackendType represents the type of storage backend
type BackendType string

const (
	BackendLRU   BackendType = "lru"
	BackendFIFO  BackendType = "fifo"
	BackendLFU   BackendType = "lfu"
	BackendRedis BackendType = "redis"
)
