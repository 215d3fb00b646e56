package storage

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/repository/memory"
	"github.com/zoo-visit-planner/internal/repository/postgres"
	redisRepo "github.com/zoo-visit-planner/internal/repository/redis"
	"github.com/zoo-visit-planner/internal/repository/sqlite"
)

// Backend - выбранное хранилище планов и его соединение
type Backend struct {
	KV     repository.KVStore
	Driver string

	close  func() error
	health func(ctx context.Context) error
}

// Open создает KVStore по STORE_DRIVER.
// redisClient нужен только для драйвера redis и может быть nil для остальных.
func Open(ctx context.Context, cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) (*Backend, error) {
	b := &Backend{Driver: cfg.Store.Driver}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		b.KV = memory.NewKVStore()

	case config.StoreRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("store driver %q requires a redis connection", cfg.Store.Driver)
		}
		b.KV = redisRepo.NewKVStore(redisClient, logger)
		b.health = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }

	case config.StorePostgres:
		db, err := postgres.New(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		kv, err := postgres.NewKVStore(ctx, db, cfg.Database.Table)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		b.KV, b.close, b.health = kv, db.Close, db.Health

	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path, logger)
		if err != nil {
			return nil, err
		}
		kv, err := sqlite.NewKVStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		b.KV, b.close, b.health = kv, db.Close, db.Health

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	logger.Info("Plan store opened",
		zap.String("driver", cfg.Store.Driver),
		zap.String("namespace", cfg.Store.Namespace))
	return b, nil
}

// Health проверяет соединение хранилища
func (b *Backend) Health(ctx context.Context) error {
	if b.health == nil {
		return nil
	}
	return b.health(ctx)
}

// Close закрывает соединение; для redis клиентом владеет вызывающая сторона
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	err := b.close()
	b.close = nil
	return err
}

// JoinHealth объединяет проверки нескольких зависимостей
func JoinHealth(checks ...func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		var errs []error
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return stderrors.Join(errs...)
	}
}
