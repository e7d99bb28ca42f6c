// Package options provides functional options for configuring Store instances.
package options

import (
	"errors"

	"github.com/botirk38/bowscore/backends"
	"github.com/botirk38/bowscore/scoring"
	"github.com/botirk38/bowscore/types"
)

// Option represents a configuration option for a Store
type Option[K comparable, V any] func(*Config[K, V]) error

// Config holds the configuration for building a Store
type Config[K comparable, V any] struct {
	Backend types.VectorStore[K, V]
	Scorer  scoring.Func
}

// NewConfig creates a new configuration with default values. The
// default scorer is the L1 measure.
func NewConfig[K comparable, V any]() *Config[K, V] {
	return &Config[K, V]{
		Scorer: scoring.L1,
	}
}

// Apply applies all the given options to the config
func (c *Config[K, V]) Apply(opts ...Option[K, V]) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config[K, V]) Validate() error {
	if c.Backend == nil {
		return errors.New("backend is required - use WithLRUBackend, WithRedisBackend, etc.")
	}
	if c.Scorer == nil {
		return errors.New("scorer is required - use WithScoring or WithCustomScorer")
	}
	return nil
}

// WithLRUBackend sets up an LRU in-memory backend
func WithLRUBackend[K comparable, V any](capacity int) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		backend, err := backends.NewLRUBackend[K, V](types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithFIFOBackend sets up a FIFO in-memory backend
func WithFIFOBackend[K comparable, V any](capacity int) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		backend, err := backends.NewFIFOBackend[K, V](types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithLFUBackend sets up an LFU in-memory backend
func WithLFUBackend[K comparable, V any](capacity int) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		backend, err := backends.NewLFUBackend[K, V](types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithRedisBackend sets up a Redis backend
func WithRedisBackend[K comparable, V any](addr string, db int) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		backend, err := backends.NewRedisBackend[K, V](types.BackendConfig{
			ConnectionString: addr,
			Database:         db,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithCustomBackend allows using a pre-configured backend
func WithCustomBackend[K comparable, V any](backend types.VectorStore[K, V]) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		if backend == nil {
			return errors.New("backend cannot be nil")
		}
		cfg.Backend = backend
		return nil
	}
}

// WithScoring selects one of the built-in scoring measures
func WithScoring[K comparable, V any](t scoring.Type) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		scorer, err := scoring.New(t)
		if err != nil {
			return err
		}
		cfg.Scorer = scorer
		return nil
	}
}

// WithCustomScorer sets a custom scoring function
func WithCustomScorer[K comparable, V any](scorer scoring.Func) Option[K, V] {
	return func(cfg *Config[K, V]) error {
		if scorer == nil {
			return errors.New("scorer cannot be nil")
		}
		cfg.Scorer = scorer
		return nil
	}
}
