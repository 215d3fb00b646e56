package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

const (
	mapKeyPrefix = "map:svg:"
	statsKey     = "stats:current"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository - кеш карт маршрутов и статистики поверх Redis
func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{client: r.Client(), logger: r.logger}
}

// Get возвращает (nil, nil) при промахе
func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, r.fail("get", key, err)
	}
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return r.fail("set", key, err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return r.fail("delete", key, err)
	}
	return nil
}

func (r *cacheRepository) GetMap(ctx context.Context, key string) ([]byte, error) {
	svg, err := r.Get(ctx, mapKeyPrefix+key)
	if svg != nil {
		r.logger.Debug("Map cache hit", zap.String("key", key), zap.Int("bytes", len(svg)))
	}
	return svg, err
}

func (r *cacheRepository) SetMap(ctx context.Context, key string, svg []byte, ttl time.Duration) error {
	return r.Set(ctx, mapKeyPrefix+key, svg, ttl)
}

func (r *cacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	data, err := r.Get(ctx, statsKey)
	if err != nil || data == nil {
		return nil, err
	}
	var stats domain.Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		// битая запись ведёт себя как промах и перезапишется
		r.logger.Warn("Dropping unreadable cached statistics", zap.Error(err))
		return nil, nil
	}
	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}
	return r.Set(ctx, statsKey, data, ttl)
}

// InvalidateStats сбрасывает сводку после изменения списка планов
func (r *cacheRepository) InvalidateStats(ctx context.Context) error {
	return r.Delete(ctx, statsKey)
}

func (r *cacheRepository) fail(op, key string, err error) error {
	r.logger.Error("Cache operation failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
	return fmt.Errorf("cache %s %s: %w", op, key, err)
}
