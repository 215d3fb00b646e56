package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

// CatalogUseCase - чтение каталога локаций и туров
type CatalogUseCase struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

// NewCatalogUseCase создает новый экземпляр CatalogUseCase
func NewCatalogUseCase(catalog repository.CatalogRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Locations возвращает локации по фильтру; неизвестный фильтр означает "all"
func (uc *CatalogUseCase) Locations(ctx context.Context, filter string) (*dto.LocationsResponse, error) {
	f := domain.ParseFilter(filter)
	locations, err := uc.catalog.ByFilter(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	uc.logger.Debug("Locations listed",
		zap.String("filter", string(f)),
		zap.Int("count", len(locations)))

	return &dto.LocationsResponse{
		Filter:    f,
		Locations: locations,
		Total:     len(locations),
	}, nil
}

// Location возвращает локацию по идентификатору
func (uc *CatalogUseCase) Location(ctx context.Context, id string) (*domain.Location, error) {
	loc, ok, err := uc.catalog.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if !ok {
		return nil, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{"id": id})
	}
	return &loc, nil
}

// Tours возвращает подготовленные туры
func (uc *CatalogUseCase) Tours(ctx context.Context) (*dto.ToursResponse, error) {
	tours, err := uc.catalog.Tours(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return &dto.ToursResponse{Tours: tours}, nil
}
