// Package remote provides descriptor stores backed by external
// services.
package remote

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/botirk38/bowscore/bow"
	"github.com/botirk38/bowscore/types"
)

// RedisBackend implements VectorStore on a Redis server. Entries live
// under a configurable key prefix as JSON documents.
type RedisBackend[K comparable, V any] struct {
	client *redis.Client
	prefix string
}

// redisDocument is the stored form of an entry.
type redisDocument[V any] struct {
	Key       string     `json:"key"`
	Value     V          `json:"value"`
	Vector    bow.Vector `json:"vector"`
	Timestamp int64      `json:"timestamp"`
}

// parseRedisURL parses a Redis URL and returns redis.Options.
func parseRedisURL(connectionString string) (*redis.Options, error) {
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsedURL, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{Addr: parsedURL.Host}

		if parsedURL.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		if parsedURL.User != nil {
			opts.Username = parsedURL.User.Username()
			if password, ok := parsedURL.User.Password(); ok {
				opts.Password = password
			}
		}

		if parsedURL.Path != "" && parsedURL.Path != "/" {
			dbStr := strings.TrimPrefix(parsedURL.Path, "/")
			if db, err := strconv.Atoi(dbStr); err == nil {
				opts.DB = db
			}
		}

		return opts, nil
	}

	// simple host:port address
	return &redis.Options{Addr: connectionString}, nil
}

// NewRedisBackend creates a new Redis backend and verifies the
// connection.
func NewRedisBackend[K comparable, V any](config types.BackendConfig) (*RedisBackend[K, V], error) {
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := "bowscore:"
	if prefixOpt, ok := config.Options["prefix"]; ok {
		if p, ok := prefixOpt.(string); ok {
			prefix = p
		}
	}

	return &RedisBackend[K, V]{client: client, prefix: prefix}, nil
}

// keyString converts a key to its Redis key.
func (b *RedisBackend[K, V]) keyString(key K) string {
	return fmt.Sprintf("%s%v", b.prefix, key)
}

// Set stores an entry as a JSON document.
func (b *RedisBackend[K, V]) Set(ctx context.Context, key K, entry types.Entry[V]) error {
	doc := redisDocument[V]{
		Key:       fmt.Sprintf("%v", key),
		Value:     entry.Value,
		Vector:    entry.Vector,
		Timestamp: time.Now().Unix(),
	}

	data, err := sonic.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if err := b.client.Set(ctx, b.keyString(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set entry in Redis: %w", err)
	}
	return nil
}

// Get retrieves an entry.
func (b *RedisBackend[K, V]) Get(ctx context.Context, key K) (types.Entry[V], bool, error) {
	data, err := b.client.Get(ctx, b.keyString(key)).Bytes()
	if err == redis.Nil {
		return types.Entry[V]{}, false, nil
	}
	if err != nil {
		return types.Entry[V]{}, false, fmt.Errorf("failed to get entry from Redis: %w", err)
	}

	var doc redisDocument[V]
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return types.Entry[V]{}, false, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return types.Entry[V]{Vector: doc.Vector, Value: doc.Value}, true, nil
}

// Delete removes an entry.
func (b *RedisBackend[K, V]) Delete(ctx context.Context, key K) error {
	if err := b.client.Del(ctx, b.keyString(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete entry from Redis: %w", err)
	}
	return nil
}

// Contains checks if a key exists.
func (b *RedisBackend[K, V]) Contains(ctx context.Context, key K) (bool, error) {
	exists, err := b.client.Exists(ctx, b.keyString(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence in Redis: %w", err)
	}
	return exists > 0, nil
}

// scanKeys collects all Redis keys under the configured prefix.
func (b *RedisBackend[K, V]) scanKeys(ctx context.Context) ([]string, error) {
	pattern := b.prefix + "*"
	var keys []string
	var cursor uint64

	for {
		batch, next, err := b.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys from Redis: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Flush clears all entries under the configured prefix.
func (b *RedisBackend[K, V]) Flush(ctx context.Context) error {
	keys, err := b.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := b.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to flush Redis: %w", err)
		}
	}
	return nil
}

// Len returns the number of entries under the configured prefix.
func (b *RedisBackend[K, V]) Len(ctx context.Context) (int, error) {
	keys, err := b.scanKeys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Keys returns all keys under the configured prefix, converted back to
// the key type.
func (b *RedisBackend[K, V]) Keys(ctx context.Context) ([]K, error) {
	redisKeys, err := b.scanKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]K, 0, len(redisKeys))
	for _, redisKey := range redisKeys {
		if len(redisKey) <= len(b.prefix) {
			continue
		}
		keyStr := redisKey[len(b.prefix):]
		var key K
		if err := sonic.Unmarshal(fmt.Appendf(nil, "%q", keyStr), &key); err == nil {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// GetVector retrieves just the descriptor for a key.
func (b *RedisBackend[K, V]) GetVector(ctx context.Context, key K) (bow.Vector, bool, error) {
	entry, found, err := b.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}
	return entry.Vector, true, nil
}

// Close closes the Redis connection.
func (b *RedisBackend[K, V]) Close() error {
	return b.client.Close()
}

// SetAsync stores an entry asynchronously.
func (b *RedisBackend[K, V]) SetAsync(ctx context.Context, key K, entry types.Entry[V]) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		errCh <- b.Set(ctx, key, entry)
	}()
	return errCh
}

// GetAsync retrieves an entry asynchronously.
func (b *RedisBackend[K, V]) GetAsync(ctx context.Context, key K) <-chan types.AsyncGetResult[V] {
	resultCh := make(chan types.AsyncGetResult[V], 1)
	go func() {
		defer close(resultCh)
		entry, found, err := b.Get(ctx, key)
		resultCh <- types.AsyncGetResult[V]{Entry: entry, Found: found, Error: err}
	}()
	return resultCh
}

// DeleteAsync removes an entry asynchronously.
func (b *RedisBackend[K, V]) DeleteAsync(ctx context.Context, key K) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		errCh <- b.Delete(ctx, key)
	}()
	return errCh
}

// GetBatchAsync retrieves multiple entries asynchronously.
func (b *RedisBackend[K, V]) GetBatchAsync(ctx context.Context, keys []K) <-chan types.AsyncBatchResult[K, V] {
	resultCh := make(chan types.AsyncBatchResult[K, V], 1)
	go func() {
		defer close(resultCh)
		entries := make(map[K]types.Entry[V])
		for _, key := range keys {
			if entry, found, err := b.Get(ctx, key); err == nil && found {
				entries[key] = entry
			}
		}
		resultCh <- types.AsyncBatchResult[K, V]{Entries: entries}
	}()
	return resultCh
}
