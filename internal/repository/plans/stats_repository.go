package plans

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

const mostPlannedLimit = 5

type statsRepository struct {
	catalog repository.CatalogRepository
	plans   repository.PlanRepository
	logger  *zap.Logger
}

// NewStatsRepository агрегирует статистику по каталогу и сохранённым планам
func NewStatsRepository(catalog repository.CatalogRepository, plans repository.PlanRepository, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		catalog: catalog,
		plans:   plans,
		logger:  logger,
	}
}

// GetStatistics возвращает агрегированную статистику
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{LastUpdated: time.Now().UTC()}

	all, err := r.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog stats: %w", err)
	}
	tours, err := r.catalog.Tours(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog stats: %w", err)
	}

	names := make(map[string]string, len(all))
	stats.Catalog.ByType = make(map[string]int)
	for _, l := range all {
		names[l.ID] = l.Name
		switch l.Partition {
		case domain.PartitionAnimal:
			stats.Catalog.Animals++
			stats.Catalog.ByType[l.Category]++
		case domain.PartitionPlace:
			stats.Catalog.Places++
			stats.Catalog.ByType[l.Type]++
		}
	}
	stats.Catalog.Tours = len(tours)

	plans, err := r.plans.List(ctx)
	if err != nil {
		r.logger.Error("failed to get plan stats", zap.Error(err))
		return nil, fmt.Errorf("get plan stats: %w", err)
	}

	counts := make(map[string]int)
	stops := 0
	for _, p := range plans {
		stops += len(p.Locations)
		stats.Plans.TotalVisitors += p.Visitors
		for _, id := range p.Locations {
			counts[id]++
		}
	}
	stats.Plans.TotalPlans = len(plans)
	if len(plans) > 0 {
		stats.Plans.AverageStops = float64(stops) / float64(len(plans))
	}
	stats.Plans.MostPlanned = topLocations(counts, names, mostPlannedLimit)

	return stats, nil
}

// topLocations - самые частые локации, при равенстве по идентификатору
func topLocations(counts map[string]int, names map[string]string, limit int) []domain.LocationCount {
	out := make([]domain.LocationCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, domain.LocationCount{LocationID: id, Name: names[id], Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LocationID < out[j].LocationID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
