package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	fresh := &domain.Statistics{Plans: domain.PlanStats{TotalPlans: 3}}

	t.Run("from cache", func(t *testing.T) {
		cache := &MockCacheRepository{}
		stats := &MockStatsRepository{}
		cache.On("GetStats", mock.Anything).Return(fresh, nil)

		got, err := usecase.NewStatsUseCase(stats, cache, time.Minute, zap.NewNop()).GetStatistics(ctx)
		require.NoError(t, err)
		assert.Same(t, fresh, got)
		stats.AssertNotCalled(t, "GetStatistics", mock.Anything)
	})

	t.Run("computed and cached on miss", func(t *testing.T) {
		cache := &MockCacheRepository{}
		stats := &MockStatsRepository{}
		cache.On("GetStats", mock.Anything).Return(nil, nil)
		cache.On("SetStats", mock.Anything, fresh, time.Minute).Return(nil)
		stats.On("GetStatistics", mock.Anything).Return(fresh, nil)

		got, err := usecase.NewStatsUseCase(stats, cache, time.Minute, zap.NewNop()).GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Plans.TotalPlans)
		cache.AssertExpectations(t)
	})

	t.Run("compute error", func(t *testing.T) {
		cache := &MockCacheRepository{}
		stats := &MockStatsRepository{}
		cache.On("GetStats", mock.Anything).Return(nil, assert.AnError)
		stats.On("GetStatistics", mock.Anything).Return(nil, assert.AnError)

		_, err := usecase.NewStatsUseCase(stats, cache, 0, zap.NewNop()).GetStatistics(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestStatsUseCase_RefreshStatistics(t *testing.T) {
	fresh := &domain.Statistics{Plans: domain.PlanStats{TotalPlans: 5}}
	cache := &MockCacheRepository{}
	stats := &MockStatsRepository{}
	cache.On("SetStats", mock.Anything, fresh, 5*time.Minute).Return(assert.AnError)
	stats.On("GetStatistics", mock.Anything).Return(fresh, nil)

	got, err := usecase.NewStatsUseCase(stats, cache, 0, zap.NewNop()).RefreshStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, got.Plans.TotalPlans)
	cache.AssertNotCalled(t, "GetStats", mock.Anything)
	cache.AssertExpectations(t)
}

func TestCatalogUseCase(t *testing.T) {
	uc := usecase.NewCatalogUseCase(testCatalog(t), zap.NewNop())
	ctx := context.Background()

	dining, err := uc.Locations(ctx, "dining")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterDining, dining.Filter)
	assert.Equal(t, []string{"mospizza", "dinezoo", "wilshop"}, domain.LocationIDs(dining.Locations))

	all, err := uc.Locations(ctx, "bogus")
	require.NoError(t, err)
	assert.Equal(t, 16, all.Total)

	loc, err := uc.Location(ctx, "koala")
	require.NoError(t, err)
	assert.Equal(t, "Koalas", loc.Name)

	_, err = uc.Location(ctx, "yeti")
	assert.Error(t, err)

	tours, err := uc.Tours(ctx)
	require.NoError(t, err)
	assert.Len(t, tours.Tours, 3)
}
