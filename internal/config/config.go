package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	App      App      `yaml:"app"`
	HTTP     HTTP     `yaml:"http"`
	Log      Log      `yaml:"log"`
	Mock     Mock     `yaml:"mock"`
	Store    Store    `yaml:"store"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
}

type App struct {
	Name          string `yaml:"name" env:"APP_NAME" env-default:"journeys-api"`
	CurrentUserID string `yaml:"current_user_id" env:"CURRENT_USER_ID" env-default:"user-1"`
}

type HTTP struct {
	Port    string `yaml:"port" env:"PORT" env-default:"8080"`
	GinMode string `yaml:"gin_mode" env:"GIN_MODE" env-default:"release"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Mock struct {
	Latency time.Duration `yaml:"latency" env:"MOCK_LATENCY" env-default:"300ms"`
}

type Store struct {
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"memory"`
	Key     string `yaml:"key" env:"STORE_KEY" env-default:"trip-threads-trips"`
}

type Postgres struct {
	URL string `yaml:"url" env:"POSTGRES_URL"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// New reads .env, then config.yaml with env overrides, falling back to env
// vars alone when there is no config file.
func New() (*Config, error) {
	_ = godotenv.Load()
	return Load("config.yaml")
}

func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		// fallback to env vars if file not found
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("config error: POSTGRES_URL is required for the postgres store backend")
		}
	default:
		return fmt.Errorf("config error: unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.Mock.Latency < 0 {
		return fmt.Errorf("config error: MOCK_LATENCY must not be negative")
	}
	return nil
}
