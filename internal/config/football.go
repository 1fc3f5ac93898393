package config

import (
	"strings"
	"time"
)

// FootballConfig controls how we talk to the upstream football API.
type FootballConfig struct {
	BaseURL string        `env:"FOOTBALL_API_BASE_URL" env-default:"https://football-api-7.p.rapidapi.com/api/v3"`
	APIKey  string        `env:"FOOTBALL_API_KEY"`
	APIHost string        `env:"FOOTBALL_API_HOST" env-default:"football-api-7.p.rapidapi.com"`
	Timeout time.Duration `env:"FOOTBALL_API_TIMEOUT" env-default:"10s"`
}

func (f *FootballConfig) normalize() {
	f.APIKey = strings.TrimSpace(f.APIKey)
	if f.Timeout <= 0 {
		f.Timeout = defaultFootballTimeout
	}
}
