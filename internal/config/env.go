package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv merges KEY=VALUE pairs from ENV_FILE (default .env) without
// overriding variables already present in the process environment.
func loadDotEnv() {
	path := envOrDefault(envFile, defaultEnvFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return
	}
	_ = godotenv.Load(path)
}

func envOrDefault(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return defaultValue
}
