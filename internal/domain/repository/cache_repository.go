package repository

import (
	"context"
	"time"

	"github.com/zoo-visit-planner/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, промах - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetMap получает отрисованную карту маршрута
	GetMap(ctx context.Context, key string) ([]byte, error)

	// SetMap сохраняет отрисованную карту маршрута
	SetMap(ctx context.Context, key string, svg []byte, ttl time.Duration) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error

	// InvalidateStats сбрасывает закешированную статистику
	InvalidateStats(ctx context.Context) error
}
