package token

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the credential pair in a redis hash, for headless
// deployments that want sessions to survive process restarts without a
// writable filesystem.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to redisURL and namespaces the credential hash
// under the given key (e.g. one key per agent account).
func NewRedisStore(redisURL, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

// NewRedisStoreWithClient wraps an existing client; used by tests.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load() (Credentials, error) {
	fields, err := s.client.HGetAll(context.Background(), s.key).Result()
	if err != nil {
		return Credentials{}, fmt.Errorf("load tokens: %w", err)
	}
	return Credentials{
		Access:  fields[AccessKey],
		Refresh: fields[RefreshKey],
	}, nil
}

func (s *RedisStore) Save(creds Credentials) error {
	err := s.client.HSet(context.Background(), s.key,
		AccessKey, creds.Access,
		RefreshKey, creds.Refresh,
	).Err()
	if err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	if err := s.client.Del(context.Background(), s.key).Err(); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
