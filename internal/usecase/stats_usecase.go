package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

const defaultStatsTTL = 5 * time.Minute

// StatsUseCase - сводка по каталогу и сохранённым планам с кешированием
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase. ttl <= 0 означает 5 минут.
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

// GetStatistics отдаёт сводку из кеша, при промахе или ошибке кеша пересчитывает
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	switch {
	case err != nil:
		uc.logger.Warn("Stats cache unavailable, computing", zap.Error(err))
	case cached != nil:
		return cached, nil
	}
	return uc.compute(ctx)
}

// RefreshStatistics пересчитывает сводку в обход кеша
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Statistics refreshed",
		zap.Int("plans", stats.Plans.TotalPlans),
		zap.Time("last_updated", stats.LastUpdated))
	return stats, nil
}

func (uc *StatsUseCase) compute(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute statistics: %w", err)
	}
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.ttl); err != nil {
		uc.logger.Warn("Failed to cache statistics", zap.Error(err))
	}
	return stats, nil
}
