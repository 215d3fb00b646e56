package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/config"
	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/pkg/logger"
	"github.com/zoo-visit-planner/internal/repository/cache"
	"github.com/zoo-visit-planner/internal/repository/catalog"
	"github.com/zoo-visit-planner/internal/repository/plans"
	"github.com/zoo-visit-planner/internal/repository/storage"
	"github.com/zoo-visit-planner/internal/route"
	"github.com/zoo-visit-planner/internal/usecase"
)

var envFile string

// app - общие зависимости команд CLI
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	catalog repository.CatalogRepository
}

func loadApp() (*app, error) {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return nil, err
	}
	log, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	catalogRepo, err := catalog.NewDefault(log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, catalog: catalogRepo}, nil
}

// mapUseCase - отрисовка без сессий и без кеша
func (a *app) mapUseCase() *usecase.MapUseCase {
	return usecase.NewMapUseCase(nil, a.catalog, cache.NewNoopCacheRepository(), usecase.MapOptions{
		Padding:      a.cfg.Map.Padding,
		DefaultWidth: a.cfg.Map.DefaultWidth,
		HitTolerance: a.cfg.Map.HitTolerance,
	}, a.log)
}

// openPlans открывает хранилище планов. Драйвер redis в CLI не поддерживается.
func (a *app) openPlans(ctx context.Context) (repository.PlanRepository, func(), error) {
	if a.cfg.Store.Driver == config.StoreRedis {
		return nil, nil, fmt.Errorf("store driver %q is not available in the CLI", a.cfg.Store.Driver)
	}
	backend, err := storage.Open(ctx, a.cfg, nil, a.log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := backend.Close(); err != nil {
			a.log.Warn("Failed to close plan store", zap.Error(err))
		}
	}
	return plans.NewPlanRepository(backend.KV, a.cfg.Store.Namespace, a.log), closeFn, nil
}

// planRoute переводит идентификаторы в локации и строит жадный маршрут.
// Неизвестные идентификаторы возвращаются отдельно.
func planRoute(ctx context.Context, catalogRepo repository.CatalogRepository, ids []string) ([]domain.Location, []string, error) {
	p := route.NewPlanner(nil)
	var unknown []string
	for _, id := range ids {
		loc, ok, err := catalogRepo.ByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		if !p.IsSelected(id) {
			p.Toggle(loc)
		}
	}
	ordered, err := p.GenerateRoute()
	if err != nil {
		return nil, unknown, err
	}
	return ordered, unknown, nil
}
