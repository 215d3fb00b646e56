package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
)

const pingTimeout = 5 * time.Second

// Redis - общий клиент: кеш карт и статистики, хранилище планов, стримы событий
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis создает клиент и проверяет соединение; при ошибке клиент закрывается
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	logger.Info("Redis connected", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.DB))
	return &Redis{client: client, logger: logger}, nil
}

// NewRedisFromClient оборачивает готовый клиент (тесты, CLI)
func NewRedisFromClient(client *redis.Client, logger *zap.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Client() *redis.Client {
	return r.client
}

func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}
