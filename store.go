// Package bowscore scores sparse bag-of-words descriptors, as used in
// visual place recognition and document retrieval. The scoring package
// holds the distance and similarity measures; this package adds a
// keyed store of descriptors so callers can compare what they have put
// in. Every comparison yields one scalar for one pair of vectors;
// ranking candidates is left to the caller.
package bowscore

import (
	"context"
	"errors"
	"fmt"

	"github.com/botirk38/bowscore/bow"
	"github.com/botirk38/bowscore/options"
	"github.com/botirk38/bowscore/scoring"
	"github.com/botirk38/bowscore/types"
)

// ErrNotFound is returned when a scoring operation names a key the
// backend does not hold.
var ErrNotFound = errors.New("key not found")

// Store holds bag-of-words descriptors in a pluggable backend and
// scores pairs of them with the configured measure.
type Store[K comparable, V any] struct {
	backend types.VectorStore[K, V]
	scorer  scoring.Func
}

// New creates a Store with functional options.
func New[K comparable, V any](opts ...options.Option[K, V]) (*Store[K, V], error) {
	cfg := options.NewConfig[K, V]()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewStore(cfg.Backend, cfg.Scorer)
}

// NewStore creates a Store from a backend and a scoring function.
func NewStore[K comparable, V any](backend types.VectorStore[K, V], scorer scoring.Func) (*Store[K, V], error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}
	if scorer == nil {
		return nil, errors.New("scorer cannot be nil")
	}
	return &Store[K, V]{backend: backend, scorer: scorer}, nil
}

// Put stores a descriptor and its associated value under key.
func (s *Store[K, V]) Put(ctx context.Context, key K, vector bow.Vector, value V) error {
	return s.backend.Set(ctx, key, types.Entry[V]{Vector: vector, Value: value})
}

// Get retrieves the entry stored under key.
func (s *Store[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	return s.backend.Get(ctx, key)
}

// Delete removes the entry stored under key.
func (s *Store[K, V]) Delete(ctx context.Context, key K) error {
	return s.backend.Delete(ctx, key)
}

// Contains checks whether key is present.
func (s *Store[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	return s.backend.Contains(ctx, key)
}

// Flush clears all entries.
func (s *Store[K, V]) Flush(ctx context.Context) error {
	return s.backend.Flush(ctx)
}

// Len returns the number of stored entries.
func (s *Store[K, V]) Len(ctx context.Context) (int, error) {
	return s.backend.Len(ctx)
}

// Keys returns all stored keys.
func (s *Store[K, V]) Keys(ctx context.Context) ([]K, error) {
	return s.backend.Keys(ctx)
}

// Close releases the backend's resources.
func (s *Store[K, V]) Close() error {
	return s.backend.Close()
}

// Score compares the descriptors stored under a and b with the
// configured measure. Argument order matters for asymmetric measures
// such as KL divergence.
func (s *Store[K, V]) Score(ctx context.Context, a, b K) (float64, error) {
	va, found, err := s.backend.GetVector(ctx, a)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, a)
	}

	vb, found, err := s.backend.GetVector(ctx, b)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, b)
	}

	return s.scorer(va, vb), nil
}

// ScoreWith compares a caller-held query descriptor against the
// descriptor stored under key. The query is the first argument of the
// measure.
func (s *Store[K, V]) ScoreWith(ctx context.Context, key K, query bow.Vector) (float64, error) {
	v, found, err := s.backend.GetVector(ctx, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, key)
	}

	return s.scorer(query, v), nil
}
