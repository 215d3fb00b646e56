package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/route"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

// PlanUseCase - сохранение, загрузка и удаление планов посещения
type PlanUseCase struct {
	plans     repository.PlanRepository
	catalog   repository.CatalogRepository
	sessions  *SessionStore
	cacheRepo repository.CacheRepository
	publisher repository.EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

// NewPlanUseCase создает новый экземпляр PlanUseCase.
// publisher может быть nil: тогда событие о сохранении не публикуется.
func NewPlanUseCase(
	plans repository.PlanRepository,
	catalog repository.CatalogRepository,
	sessions *SessionStore,
	cacheRepo repository.CacheRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *PlanUseCase {
	return &PlanUseCase{
		plans:     plans,
		catalog:   catalog,
		sessions:  sessions,
		cacheRepo: cacheRepo,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

// SetClock подменяет источник времени (идентификатор плана и дата по умолчанию)
func (uc *PlanUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// Save сохраняет выбор и маршрут сессии как новый план
func (uc *PlanUseCase) Save(ctx context.Context, sessionID string, req *dto.SavePlanRequest) (*domain.Plan, error) {
	selection, ordered, err := snapshot(uc.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	plan := domain.NewPlan(domain.PlanDraft{
		Name:     req.Name,
		Date:     req.Date,
		Visitors: req.Visitors,
		Notes:    req.Notes,
	}, selection, ordered, uc.now().UTC())

	existing, err := uc.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	plan.ID = uniqueID(plan.ID, existing)

	if err := uc.plans.Append(ctx, plan); err != nil {
		uc.logger.Error("Failed to save plan", zap.Int64("plan_id", plan.ID), zap.Error(err))
		return nil, errors.ErrStoreError
	}

	uc.invalidateStats(ctx)
	uc.publishSaved(ctx, plan)

	uc.logger.Info("Plan saved",
		zap.Int64("plan_id", plan.ID),
		zap.String("name", plan.Name),
		zap.Int("stops", len(plan.Locations)))
	return &plan, nil
}

// List возвращает сохранённые планы, новые первыми
func (uc *PlanUseCase) List(ctx context.Context) (*dto.PlansResponse, error) {
	plans, err := uc.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	reversed := make([]domain.Plan, len(plans))
	for i, p := range plans {
		reversed[len(plans)-1-i] = p
	}
	return &dto.PlansResponse{Plans: reversed, Total: len(plans)}, nil
}

// Load заменяет выбор сессии локациями плана и восстанавливает сохранённый маршрут.
// План без маршрута оставляет сессию без маршрута.
func (uc *PlanUseCase) Load(ctx context.Context, sessionID string, planID int64) (*dto.PlanLoadResponse, error) {
	plan, ok, err := uc.plans.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if !ok {
		return nil, errors.ErrPlanNotFound.WithDetails(map[string]interface{}{"id": planID})
	}

	selection, err := uc.catalog.Resolve(ctx, plan.Locations)
	if err != nil {
		return nil, fmt.Errorf("resolve plan locations: %w", err)
	}
	ordered, err := uc.catalog.Resolve(ctx, plan.Route)
	if err != nil {
		return nil, fmt.Errorf("resolve plan route: %w", err)
	}

	resp := dto.PlanLoadResponse{Plan: plan}
	err = uc.sessions.With(sessionID, func(p *route.Planner) error {
		p.Replace(selection)
		p.SetRoute(ordered)
		if len(ordered) > 0 {
			if err := route.ValidatePermutation(p.Route(), p.Selection()); err != nil {
				uc.logger.Warn("Stored route does not match selection, regenerating",
					zap.Int64("plan_id", planID),
					zap.Error(err))
				if _, err := p.GenerateRoute(); err != nil {
					p.SetRoute(nil)
				}
			}
		}
		resp.Selection = selectionResponse(sessionID, p)
		resp.Route = routeResponse(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Plan loaded",
		zap.String("session_id", sessionID),
		zap.Int64("plan_id", planID),
		zap.Int("dropped", len(plan.Locations)-len(selection)))
	return &resp, nil
}

// Delete удаляет план; отсутствующий план не ошибка
func (uc *PlanUseCase) Delete(ctx context.Context, planID int64) error {
	if err := uc.plans.Delete(ctx, planID); err != nil {
		uc.logger.Error("Failed to delete plan", zap.Int64("plan_id", planID), zap.Error(err))
		return errors.ErrStoreError
	}
	uc.invalidateStats(ctx)
	uc.logger.Info("Plan deleted", zap.Int64("plan_id", planID))
	return nil
}

func (uc *PlanUseCase) invalidateStats(ctx context.Context) {
	if err := uc.cacheRepo.InvalidateStats(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}

func (uc *PlanUseCase) publishSaved(ctx context.Context, plan domain.Plan) {
	if uc.publisher == nil || len(plan.Route) == 0 {
		return
	}
	event := domain.PlanSavedEvent{
		EventID: uuid.New(),
		PlanID:  plan.ID,
		Name:    plan.Name,
		Route:   plan.Route,
	}
	if err := uc.publisher.PublishToStream(ctx, domain.StreamPlanSaved, event); err != nil {
		uc.logger.Warn("Failed to publish plan saved event",
			zap.Int64("plan_id", plan.ID),
			zap.Error(err))
	}
}

// uniqueID сдвигает идентификатор на миллисекунду вперёд, пока он занят
func uniqueID(id int64, existing []domain.Plan) int64 {
	taken := make(map[int64]struct{}, len(existing))
	for _, p := range existing {
		taken[p.ID] = struct{}{}
	}
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}
