package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("RequestTimeout converts seconds to duration", func(t *testing.T) {
		cfg := &Config{RequestTimeoutSeconds: 30}
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	})

	t.Run("zero timeout stays zero", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, time.Duration(0), cfg.RequestTimeout())
	})
}

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"KEDESH_BASE_URL":    os.Getenv("KEDESH_BASE_URL"),
		"KEDESH_LOGIN_PATH":  os.Getenv("KEDESH_LOGIN_PATH"),
		"KEDESH_TOKEN_STORE": os.Getenv("KEDESH_TOKEN_STORE"),
		"KEDESH_TOKEN_FILE":  os.Getenv("KEDESH_TOKEN_FILE"),
		"KEDESH_REDIS_URL":   os.Getenv("KEDESH_REDIS_URL"),
		"KEDESH_LOG_LEVEL":   os.Getenv("KEDESH_LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	reset := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads config with defaults", func(t *testing.T) {
		reset()
		os.Setenv("KEDESH_BASE_URL", "https://rental.example.test/api/v2")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://rental.example.test/api/v2", cfg.BaseURL)
		assert.Equal(t, "/login", cfg.LoginPath)
		assert.Equal(t, StoreMemory, cfg.TokenStore)
		assert.Equal(t, 0, cfg.RequestTimeoutSeconds)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("loads custom values", func(t *testing.T) {
		reset()
		os.Setenv("KEDESH_BASE_URL", "https://rental.example.test/api/v2")
		os.Setenv("KEDESH_LOGIN_PATH", "/signin")
		os.Setenv("KEDESH_TOKEN_STORE", "file")
		os.Setenv("KEDESH_TOKEN_FILE", "/tmp/kedesh-tokens.json")
		os.Setenv("KEDESH_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/signin", cfg.LoginPath)
		assert.Equal(t, StoreFile, cfg.TokenStore)
		assert.Equal(t, "/tmp/kedesh-tokens.json", cfg.TokenFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("fails without required KEDESH_BASE_URL", func(t *testing.T) {
		reset()

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fails on file store without a token file", func(t *testing.T) {
		reset()
		os.Setenv("KEDESH_BASE_URL", "https://rental.example.test/api/v2")
		os.Setenv("KEDESH_TOKEN_STORE", "file")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fails on redis store without a redis url", func(t *testing.T) {
		reset()
		os.Setenv("KEDESH_BASE_URL", "https://rental.example.test/api/v2")
		os.Setenv("KEDESH_TOKEN_STORE", "redis")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("fails on unknown token store", func(t *testing.T) {
		reset()
		os.Setenv("KEDESH_BASE_URL", "https://rental.example.test/api/v2")
		os.Setenv("KEDESH_TOKEN_STORE", "vault")

		_, err := Load()
		assert.Error(t, err)
	})
}
