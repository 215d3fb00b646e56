package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain/repository"
)

type kvStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewKVStore создает KV-хранилище поверх Redis, документы хранятся без TTL
func NewKVStore(client *redis.Client, logger *zap.Logger) repository.KVStore {
	return &kvStore{
		client: client,
		logger: logger,
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to read key", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return val, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error("Failed to write key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	s.logger.Debug("Key written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}
