package config

import "time"

const (
	envFile = "ENV_FILE"

	defaultEnvFile = ".env"

	ProviderAPIFootball = "apifootball"
	ProviderFixture     = "fixture"

	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"

	defaultFootballTimeout = 10 * time.Second
	defaultFilePath        = "data/cache"
	defaultSQLitePath      = "data/cache.db"
)
