// Package kvstore holds the durable string stores backing the response cache.
package kvstore

import (
	"context"
	"errors"
)

// Store is a durable string-to-string map. A single Get, Set or Delete is atomic
// for the backend; nothing coordinates across keys.
type Store interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var errEmptyKey = errors.New("kvstore: empty key")

// Pinger is implemented by backends that talk to an external process or file.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks that s can serve requests. Stores without a health check always pass.
func Ping(ctx context.Context, s Store) error {
	if s == nil {
		return errors.New("kvstore: no store")
	}
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return ctx.Err()
}
