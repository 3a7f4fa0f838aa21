// Package storage provides the key-value backends the workout snapshot is
// persisted to.
package storage

import (
	"context"
	"fmt"

	"github.com/briangreenhill/mapty/internal/config"
)

// Backend is a string key-value store.
type Backend interface {
	SetItem(ctx context.Context, key, value string) error
	GetItem(ctx context.Context, key string) (string, bool, error)
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

// Open returns the backend selected by cfg.Storage.
func Open(ctx context.Context, cfg config.Config) (Backend, error) {
	switch cfg.Storage {
	case "sqlite":
		db, err := OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "redis":
		client := ConnectRedis(cfg)
		if client == nil {
			return nil, fmt.Errorf("redis storage selected but REDIS_ADDR is empty")
		}
		return NewRedis(client, cfg.RedisPrefix), nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
