// Package store provides durable key-value storage for the job collection.
// The repository keeps its whole collection under a single key, so a backend only
// has to support get, set and clear. Implementations: in-memory map, SQLite (WAL mode)
// and Redis.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Store is a key-value store holding serialized values.
// Get returns false when the key is absent, which is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	Close() error
}

// Params defines which backend to open and how
type Params struct {
	Type          string // sqlite, memory or redis
	Path          string // sqlite database file
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// New opens the store selected by params.Type
func New(ctx context.Context, params Params) (Store, error) {
	switch strings.ToLower(params.Type) {
	case "", "sqlite":
		return NewSQLite(params.Path)
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(ctx, RedisParams{Addr: params.RedisAddr, Password: params.RedisPassword,
			DB: params.RedisDB, Prefix: params.RedisPrefix})
	default:
		return nil, fmt.Errorf("unsupported store type %q", params.Type)
	}
}
