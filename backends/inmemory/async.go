package inmemory

import (
	"context"

	"github.com/botirk38/bowscore/types"
)

// syncStore is the synchronous subset the async helpers wrap.
type syncStore[K comparable, V any] interface {
	Set(ctx context.Context, key K, entry types.Entry[V]) error
	Get(ctx context.Context, key K) (types.Entry[V], bool, error)
	Delete(ctx context.Context, key K) error
}

func setAsync[K comparable, V any](s syncStore[K, V], ctx context.Context, key K, entry types.Entry[V]) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		errCh <- s.Set(ctx, key, entry)
	}()
	return errCh
}

func getAsync[K comparable, V any](s syncStore[K, V], ctx context.Context, key K) <-chan types.AsyncGetResult[V] {
	resultCh := make(chan types.AsyncGetResult[V], 1)
	go func() {
		defer close(resultCh)
		entry, found, err := s.Get(ctx, key)
		resultCh <- types.AsyncGetResult[V]{Entry: entry, Found: found, Error: err}
	}()
	return resultCh
}

func deleteAsync[K comparable, V any](s syncStore[K, V], ctx context.Context, key K) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		errCh <- s.Delete(ctx, key)
	}()
	return errCh
}

func getBatchAsync[K comparable, V any](s syncStore[K, V], ctx context.Context, keys []K) <-chan types.AsyncBatchResult[K, V] {
	resultCh := make(chan types.AsyncBatchResult[K, V], 1)
	go func() {
		defer close(resultCh)
		entries := make(map[K]types.Entry[V])
		for _, key := range keys {
			if entry, found, err := s.Get(ctx, key); err == nil && found {
				entries[key] = entry
			}
		}
		resultCh <- types.AsyncBatchResult[K, V]{Entries: entries}
	}()
	return resultCh
}
