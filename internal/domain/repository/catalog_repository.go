package repository

import (
	"context"

	"github.com/zoo-visit-planner/internal/domain"
)

// CatalogRepository - статический каталог вольеров, объектов и туров
type CatalogRepository interface {
	// All возвращает все локации: сначала животные, затем места, в порядке каталога
	All(ctx context.Context) ([]domain.Location, error)

	// ByID ищет локацию по идентификатору
	ByID(ctx context.Context, id string) (domain.Location, bool, error)

	// ByFilter возвращает локации, прошедшие фильтр
	ByFilter(ctx context.Context, filter domain.Filter) ([]domain.Location, error)

	// Resolve переводит идентификаторы в локации, неизвестные идентификаторы пропускаются
	Resolve(ctx context.Context, ids []string) ([]domain.Location, error)

	// Tours возвращает подготовленные туры
	Tours(ctx context.Context) ([]domain.Tour, error)

	// TourByName ищет тур по имени
	TourByName(ctx context.Context, name string) (domain.Tour, bool, error)
}
