package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sweetdelights/cakekart-backend/pkg/logger"
	"github.com/sweetdelights/cakekart-backend/pkg/redis"
)

// RedisStore persists JSON blobs in Redis. Keys are expected to be
// pre-namespaced by the redis client's key builders.
type RedisStore struct {
	client *redis.Client
	logg   *logger.Logger
}

// NewRedisStore wires a Store implementation onto the shared redis client.
func NewRedisStore(client *redis.Client, logg *logger.Logger) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{client: client, logg: logg}, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.client.Set(ctx, key, string(payload), 0)
}

func (s *RedisStore) Load(ctx context.Context, key string, dest any) error {
	raw, err := s.client.Get(ctx, key)
	if err != nil {
		if redis.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "key", key), "discarding undecodable stored blob")
		}
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key)
}
