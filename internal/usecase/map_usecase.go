package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/mapview"
	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/route"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

// MapUseCase - отрисовка карты маршрута и hit-test по ней
type MapUseCase struct {
	sessions     *SessionStore
	catalog      repository.CatalogRepository
	cacheRepo    repository.CacheRepository
	renderer     *mapview.Renderer
	defaultWidth float64
	tolerance    float64
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// MapOptions - параметры отрисовки; нулевые значения заменяются значениями по умолчанию
type MapOptions struct {
	Padding      float64
	DefaultWidth float64
	HitTolerance float64
	CacheTTL     time.Duration
}

// NewMapUseCase создает новый экземпляр MapUseCase
func NewMapUseCase(
	sessions *SessionStore,
	catalog repository.CatalogRepository,
	cacheRepo repository.CacheRepository,
	opts MapOptions,
	logger *zap.Logger,
) *MapUseCase {
	if opts.DefaultWidth <= 0 {
		opts.DefaultWidth = mapview.DefaultDisplayWidth
	}
	if opts.HitTolerance <= 0 {
		opts.HitTolerance = mapview.DefaultHitTolerance
	}
	return &MapUseCase{
		sessions:     sessions,
		catalog:      catalog,
		cacheRepo:    cacheRepo,
		renderer:     mapview.NewRenderer(opts.Padding),
		defaultWidth: opts.DefaultWidth,
		tolerance:    opts.HitTolerance,
		cacheTTL:     opts.CacheTTL,
		logger:       logger,
	}
}

// MapCacheKey - ключ отрисованной карты: маршрут и параметры поверхности
func MapCacheKey(routeIDs []string, surface mapview.Surface) string {
	name := strings.Join(routeIDs, ",") + "|" +
		strconv.FormatFloat(surface.DisplayWidth, 'f', -1, 64) + "|" +
		strconv.FormatFloat(surface.PixelRatio, 'f', -1, 64)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Surface строит поверхность по запросу; ширина 0 означает ширину по умолчанию
func (uc *MapUseCase) Surface(width, dpr float64) (mapview.Surface, error) {
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return mapview.Surface{}, errors.ErrMissingSurface
	}
	if width == 0 {
		width = uc.defaultWidth
	}
	return mapview.NewSurface(width, dpr), nil
}

// Render возвращает SVG текущего маршрута сессии, используя кеш когда возможно
func (uc *MapUseCase) Render(ctx context.Context, sessionID string, req *dto.MapRequest) ([]byte, error) {
	surface, err := uc.Surface(req.Width, req.DPR)
	if err != nil {
		return nil, err
	}
	_, ordered, err := snapshot(uc.sessions, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.renderCached(ctx, ordered, surface)
}

// RenderRoute рисует произвольный маршрут без сессии
func (uc *MapUseCase) RenderRoute(ctx context.Context, ordered []domain.Location, width, dpr float64) ([]byte, error) {
	surface, err := uc.Surface(width, dpr)
	if err != nil {
		return nil, err
	}
	all, err := uc.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return uc.renderer.RenderSVG(surface, ordered, all), nil
}

// HitTest ищет локацию каталога под точкой (x, y) поверхности
func (uc *MapUseCase) HitTest(ctx context.Context, sessionID string, req *dto.HitTestRequest) (*dto.HitTestResponse, error) {
	surface, err := uc.Surface(req.Width, req.DPR)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.With(sessionID, func(*route.Planner) error { return nil }); err != nil {
		return nil, err
	}

	all, err := uc.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	t := uc.renderer.TransformFor(surface)
	resp := &dto.HitTestResponse{
		Logical:   t.Invert(req.X, req.Y),
		Surface:   surface,
		Transform: t,
	}
	if loc, ok := mapview.HitTest(req.X, req.Y, all, t, uc.tolerance); ok {
		resp.Hit = true
		resp.Location = &loc
	}
	return resp, nil
}

// WarmRoute заранее рисует маршрут для набора ширин и плотностей и кладёт результат в кеш
func (uc *MapUseCase) WarmRoute(ctx context.Context, routeIDs []string, widths, ratios []float64) (int, error) {
	ordered, err := uc.catalog.Resolve(ctx, routeIDs)
	if err != nil {
		return 0, fmt.Errorf("resolve route: %w", err)
	}
	all, err := uc.catalog.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list catalog: %w", err)
	}
	if len(ratios) == 0 {
		ratios = []float64{1}
	}

	ids := domain.LocationIDs(ordered)
	warmed := 0
	for _, w := range widths {
		for _, dpr := range ratios {
			surface, err := uc.Surface(w, dpr)
			if err != nil {
				continue
			}
			svg := uc.renderer.RenderSVG(surface, ordered, all)
			if err := uc.cacheRepo.SetMap(ctx, MapCacheKey(ids, surface), svg, uc.cacheTTL); err != nil {
				return warmed, fmt.Errorf("cache map: %w", err)
			}
			warmed++
		}
	}
	return warmed, nil
}

func (uc *MapUseCase) renderCached(ctx context.Context, ordered []domain.Location, surface mapview.Surface) ([]byte, error) {
	key := MapCacheKey(domain.LocationIDs(ordered), surface)

	cached, err := uc.cacheRepo.GetMap(ctx, key)
	if err == nil && cached != nil {
		uc.logger.Debug("Map fetched from cache", zap.String("key", key))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get map from cache", zap.Error(err))
	}

	all, err := uc.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	svg := uc.renderer.RenderSVG(surface, ordered, all)

	if err := uc.cacheRepo.SetMap(ctx, key, svg, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache map", zap.Error(err))
	}
	return svg, nil
}
