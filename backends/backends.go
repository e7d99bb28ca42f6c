// Package backends wires the built-in descriptor storage backends
// behind a common factory.
package backends

import (
	"errors"

	"github.com/botirk38/bowscore/backends/inmemory"
	"github.com/botirk38/bowscore/backends/remote"
	"github.com/botirk38/bowscore/types"
)

var ErrUnsupportedBackend = errors.New("unsupported backend type")

// BackendFactory creates descriptor stores based on type and configuration
type BackendFactory[K comparable, V any] struct{}

// NewBackend creates a new store of the specified type
func (f *BackendFactory[K, V]) NewBackend(backendType types.BackendType, config types.BackendConfig) (types.VectorStore[K, V], error) {
	switch backendType {
	case types.BackendLRU:
		return NewLRUBackend[K, V](config)
	case types.BackendFIFO:
		return NewFIFOBackend[K, V](config)
	case types.BackendLFU:
		return NewLFUBackend[K, V](config)
	case types.BackendRedis:
		return NewRedisBackend[K, V](config)
	default:
		return nil, ErrUnsupportedBackend
	}
}

// NewLRUBackend creates a new LRU store
func NewLRUBackend[K comparable, V any](config types.BackendConfig) (types.VectorStore[K, V], error) {
	return inmemory.NewLRUBackend[K, V](config)
}

// NewFIFOBackend creates a new FIFO store
func NewFIFOBackend[K comparable, V any](config types.BackendConfig) (types.VectorStore[K, V], error) {
	return inmemory.NewFIFOBackend[K, V](config)
}

// NewLFUBackend creates a new LFU store
func NewLFUBackend[K comparable, V any](config types.BackendConfig) (types.VectorStore[K, V], error) {
	return inmemory.NewLFUBackend[K, V](config)
}

// NewRedisBackend creates a new Redis store
func NewRedisBackend[K comparable, V any](config types.BackendConfig) (types.VectorStore[K, V], error) {
	return remote.NewRedisBackend[K, V](config)
}
