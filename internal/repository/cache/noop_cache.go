package cache

import (
	"context"
	"time"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

// noopCache используется, когда Redis не настроен: всегда промах, запись игнорируется
type noopCache struct{}

func NewNoopCacheRepository() repository.CacheRepository {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, error)                       { return nil, nil }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error          { return nil }
func (noopCache) Delete(context.Context, string) error                              { return nil }
func (noopCache) GetMap(context.Context, string) ([]byte, error)                    { return nil, nil }
func (noopCache) SetMap(context.Context, string, []byte, time.Duration) error       { return nil }
func (noopCache) GetStats(context.Context) (*domain.Statistics, error)              { return nil, nil }
func (noopCache) SetStats(context.Context, *domain.Statistics, time.Duration) error { return nil }
func (noopCache) InvalidateStats(context.Context) error                             { return nil }
