package kvstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/namousaymane/KooraGoal/internal/config"
)

// Open builds the store selected by cfg.Driver. The returned close func is never nil.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StoreMemory:
		return NewMemoryStore(), noop, nil
	case config.StoreFile, "":
		s, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case config.StoreSQLite:
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("redis ping: %w", err)
		}
		s := NewRedisStore(client, cfg.KeyPrefix)
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("kvstore: unknown driver %q", cfg.Driver)
	}
}
