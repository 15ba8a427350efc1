package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Token store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

type Config struct {
	// BaseURL is the API root, e.g. https://rental.seranise.co.tz/api/v2.
	BaseURL string `env:"KEDESH_BASE_URL,required"`
	// LoginPath is where the auth-failure interceptor redirects to.
	LoginPath string `env:"KEDESH_LOGIN_PATH" envDefault:"/login"`

	TokenStore string `env:"KEDESH_TOKEN_STORE" envDefault:"memory"`
	TokenFile  string `env:"KEDESH_TOKEN_FILE" envDefault:""`
	RedisURL   string `env:"KEDESH_REDIS_URL" envDefault:""`

	// RequestTimeoutSeconds of 0 means requests are never timed out
	// client-side, which is what the web client does.
	RequestTimeoutSeconds int  `env:"KEDESH_REQUEST_TIMEOUT_SECONDS" envDefault:"0"`
	WithCredentials       bool `env:"KEDESH_WITH_CREDENTIALS" envDefault:"false"`

	LogLevel string `env:"KEDESH_LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.TokenStore {
	case StoreMemory:
	case StoreFile:
		if c.TokenFile == "" {
			return fmt.Errorf("KEDESH_TOKEN_FILE is required when KEDESH_TOKEN_STORE=file")
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("KEDESH_REDIS_URL is required when KEDESH_TOKEN_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown token store %q", c.TokenStore)
	}
	return nil
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
