package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime configuration for the data layer and its gateway.
type Config struct {
	Port     string `env:"PORT" env-default:"4000"`
	Provider string `env:"PROVIDER"`
	Timezone string `env:"TIMEZONE" env-default:"UTC"`
	Football FootballConfig
	Store    StoreConfig
	Metrics  MetricsConfig
	Log      LogConfig

	// AdminToken guards the admin endpoints; empty disables them.
	AdminToken  string   `env:"ADMIN_TOKEN"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// LogConfig selects logger level and output format.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the environment, after merging an optional .env file.
// Unparseable values are reported; semantically invalid ones are replaced by defaults.
func Load() (Config, error) {
	loadDotEnv()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// ProviderName resolves which upstream the process should talk to.
// Without an explicit choice the live API is used only when a key is present.
func (c Config) ProviderName() string {
	switch strings.ToLower(strings.TrimSpace(c.Provider)) {
	case ProviderAPIFootball:
		return ProviderAPIFootball
	case ProviderFixture:
		return ProviderFixture
	}
	if c.Football.APIKey != "" {
		return ProviderAPIFootball
	}
	return ProviderFixture
}

func (c *Config) normalize() {
	c.Football.normalize()
	c.Store.normalize()
	if strings.TrimSpace(c.Port) == "" {
		c.Port = "4000"
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = "UTC"
	}
	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSOrigins = origins
}
