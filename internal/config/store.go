package config

import (
	"strings"
	"time"
)

// StoreConfig selects and configures the persistent cache backend.
type StoreConfig struct {
	Driver        string `env:"STORE_DRIVER" env-default:"file"`
	Path          string `env:"STORE_PATH"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
	KeyPrefix     string `env:"CACHE_KEY_PREFIX" env-default:"koora:"`

	// WarmInterval refreshes live and today's fixtures in the background; zero disables it.
	WarmInterval time.Duration `env:"CACHE_WARM_INTERVAL" env-default:"0s"`
}

func (s *StoreConfig) normalize() {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case StoreMemory, StoreFile, StoreSQLite, StoreRedis:
	default:
		s.Driver = StoreFile
	}
	if s.Path == "" {
		switch s.Driver {
		case StoreFile:
			s.Path = defaultFilePath
		case StoreSQLite:
			s.Path = defaultSQLitePath
		}
	}
	if s.RedisDB < 0 {
		s.RedisDB = 0
	}
	if s.WarmInterval < 0 {
		s.WarmInterval = 0
	}
}
