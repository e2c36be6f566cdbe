package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"inkwell/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetJSON when the key is absent or no client is
// configured.
var ErrCacheMiss = errors.New("cache miss")

// GetJSON fetches key and unmarshals its JSON payload into dest.
func GetJSON(ctx context.Context, key string, dest interface{}) error {
	if client == nil {
		return ErrCacheMiss
	}
	raw, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// SetJSON marshals value and stores it under key with the given TTL.
// Failures are swallowed; the cache is best-effort.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}

// Aside implements the cache-aside pattern: fill dest from the cached value
// for key if present, otherwise call load (which fills dest) and cache the
// result. Cache failures never fail the request.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	prefix := keyPrefix(key)

	if err := GetJSON(ctx, key, dest); err == nil {
		middleware.CacheHits.WithLabelValues(prefix, "hit").Inc()
		return nil
	}
	middleware.CacheHits.WithLabelValues(prefix, "miss").Inc()

	if err := load(); err != nil {
		return err
	}

	SetJSON(ctx, key, dest, ttl)
	return nil
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
