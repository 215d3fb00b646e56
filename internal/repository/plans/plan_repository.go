package plans

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
)

// DefaultNamespace - ключ, под которым хранится список планов
const DefaultNamespace = "zooPlans"

type planRepository struct {
	store     repository.KVStore
	namespace string
	logger    *zap.Logger
}

// NewPlanRepository создает репозиторий планов поверх любого KVStore
func NewPlanRepository(store repository.KVStore, namespace string, logger *zap.Logger) repository.PlanRepository {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &planRepository{
		store:     store,
		namespace: namespace,
		logger:    logger,
	}
}

// List читает список планов; отсутствующий или повреждённый документ - пустой список
func (r *planRepository) List(ctx context.Context) ([]domain.Plan, error) {
	data, err := r.store.Get(ctx, r.namespace)
	if err != nil {
		return nil, fmt.Errorf("read plans: %w", err)
	}
	if len(data) == 0 {
		return []domain.Plan{}, nil
	}

	var plans []domain.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		r.logger.Warn("Stored plans are malformed, treating as empty",
			zap.String("namespace", r.namespace),
			zap.Error(err))
		return []domain.Plan{}, nil
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	return plans, nil
}

func (r *planRepository) Get(ctx context.Context, id int64) (domain.Plan, bool, error) {
	plans, err := r.List(ctx)
	if err != nil {
		return domain.Plan{}, false, err
	}
	for _, p := range plans {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Plan{}, false, nil
}

func (r *planRepository) Append(ctx context.Context, plan domain.Plan) error {
	plans, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.ReplaceAll(ctx, append(plans, plan))
}

func (r *planRepository) Delete(ctx context.Context, id int64) error {
	plans, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Plan, 0, len(plans))
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.ReplaceAll(ctx, kept)
}

func (r *planRepository) ReplaceAll(ctx context.Context, plans []domain.Plan) error {
	if plans == nil {
		plans = []domain.Plan{}
	}
	data, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("marshal plans: %w", err)
	}
	if err := r.store.Set(ctx, r.namespace, data); err != nil {
		return fmt.Errorf("write plans: %w", err)
	}
	r.logger.Debug("Plans written", zap.String("namespace", r.namespace), zap.Int("count", len(plans)))
	return nil
}
