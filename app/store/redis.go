package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisParams defines connection to redis server
type RedisParams struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // key namespace, defaults to "talentflow:"
}

// Redis implements Store with plain redis strings, every key is prefixed
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to redis and verifies the connection with ping
func NewRedis(ctx context.Context, params RedisParams) (*Redis, error) {
	if params.Addr == "" {
		params.Addr = "localhost:6379"
	}
	if params.Prefix == "" {
		params.Prefix = "talentflow:"
	}
	client := redis.NewClient(&redis.Options{Addr: params.Addr, Password: params.Password, DB: params.DB})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s unavailable: %w", params.Addr, err)
	}
	return &Redis{client: client, prefix: params.Prefix}, nil
}

// Get loads value for the key
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return b, true, nil
}

// Set stores value without expiration
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Clear removes keys under the prefix only, other data in the same db is kept
func (r *Redis) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan %s*: %w", r.prefix, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close closes redis client
func (r *Redis) Close() error {
	return r.client.Close()
}
