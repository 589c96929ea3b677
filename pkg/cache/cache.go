package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss значение отсутствует в кэше
var ErrMiss = errors.New("cache: miss")

// JSONCache read-through кэш поверх redis, значения хранятся в JSON.
// С nil клиентом или ttl <= 0 каждый Get возвращает ErrMiss, а Set ничего не делает.
type JSONCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New создает кэш. prefix добавляется ко всем ключам.
func New(client *redis.Client, prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

func (c *JSONCache) key(k string) string {
	return c.prefix + k
}

// Get читает значение в out
func (c *JSONCache) Get(ctx context.Context, key string, out any) error {
	if !c.enabled() {
		return ErrMiss
	}

	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache: get %s: %w", key, err)
	}

	if err := json.Unmarshal(val, out); err != nil {
		return fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return nil
}

// Set сохраняет значение с TTL
func (c *JSONCache) Set(ctx context.Context, key string, val any) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключи
func (c *JSONCache) Delete(ctx context.Context, keys ...string) error {
	if !c.enabled() || len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache: delete: %w", err)
	}
	return nil
}
