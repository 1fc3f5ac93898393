package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/namousaymane/KooraGoal/internal/config"
)

func TestOpenSelectsBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	cases := []struct {
		name string
		cfg  config.StoreConfig
		want string
	}{
		{"memory", config.StoreConfig{Driver: config.StoreMemory}, "*kvstore.MemoryStore"},
		{"file", config.StoreConfig{Driver: config.StoreFile, Path: filepath.Join(dir, "files")}, "*kvstore.FileStore"},
		{"sqlite", config.StoreConfig{Driver: config.StoreSQLite, Path: filepath.Join(dir, "cache.db")}, "*kvstore.SQLiteStore"},
		{"redis", config.StoreConfig{Driver: config.StoreRedis, RedisAddr: mr.Addr(), KeyPrefix: "koora:"}, "*kvstore.RedisStore"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, closeFn, err := Open(context.Background(), tc.cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer closeFn()

			if got := typeName(s); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestOpenRedisWritesPrefixedKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	s, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.StoreRedis, RedisAddr: mr.Addr(), KeyPrefix: "koora:"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer closeFn()

	if err := s.Set(context.Background(), "/fixtures?live=all", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := mr.Get("koora:/fixtures?live=all"); err != nil || got != "v" {
		t.Fatalf("expected prefixed key in redis, got %q err=%v", got, err)
	}
}

func TestOpenFailsForUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.StoreRedis, RedisAddr: addr})
	if err == nil {
		t.Fatalf("expected ping error")
	}
	if closeFn == nil {
		t.Fatalf("expected non-nil close func")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, _, err := Open(context.Background(), config.StoreConfig{Driver: "etcd"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *MemoryStore:
		return "*kvstore.MemoryStore"
	case *FileStore:
		return "*kvstore.FileStore"
	case *SQLiteStore:
		return "*kvstore.SQLiteStore"
	case *RedisStore:
		return "*kvstore.RedisStore"
	default:
		return "unknown"
	}
}
