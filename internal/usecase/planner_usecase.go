package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/pkg/errors"
	"github.com/zoo-visit-planner/internal/route"
	"github.com/zoo-visit-planner/internal/usecase/dto"
)

// PlannerUseCase - выбор локаций и построение маршрута в рамках сессии
type PlannerUseCase struct {
	sessions *SessionStore
	catalog  repository.CatalogRepository
	logger   *zap.Logger
}

// NewPlannerUseCase создает новый экземпляр PlannerUseCase
func NewPlannerUseCase(sessions *SessionStore, catalog repository.CatalogRepository, logger *zap.Logger) *PlannerUseCase {
	return &PlannerUseCase{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// CreateSession открывает новую сессию планирования
func (uc *PlannerUseCase) CreateSession(ctx context.Context) *dto.SessionResponse {
	id := uc.sessions.Create()
	return &dto.SessionResponse{SessionID: id.String()}
}

// Selection возвращает текущий выбор и сводку по нему
func (uc *PlannerUseCase) Selection(ctx context.Context, sessionID string) (*dto.SelectionResponse, error) {
	var resp dto.SelectionResponse
	err := uc.sessions.With(sessionID, func(p *route.Planner) error {
		resp = selectionResponse(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Toggle добавляет локацию в выбор или убирает её
func (uc *PlannerUseCase) Toggle(ctx context.Context, sessionID, locationID string) (*dto.ToggleResponse, error) {
	loc, ok, err := uc.catalog.ByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("lookup location: %w", err)
	}
	if !ok {
		return nil, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{"id": locationID})
	}

	resp := dto.ToggleResponse{LocationID: locationID}
	err = uc.sessions.With(sessionID, func(p *route.Planner) error {
		resp.Selected = p.Toggle(loc)
		resp.SelectionResponse = selectionResponse(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Selection toggled",
		zap.String("session_id", sessionID),
		zap.String("location_id", locationID),
		zap.Bool("selected", resp.Selected))
	return &resp, nil
}

// GenerateRoute пересчитывает маршрут жадным алгоритмом ближайшего соседа
func (uc *PlannerUseCase) GenerateRoute(ctx context.Context, sessionID string) (*dto.RouteResponse, error) {
	var resp dto.RouteResponse
	err := uc.sessions.With(sessionID, func(p *route.Planner) error {
		if _, err := p.GenerateRoute(); err != nil {
			return err
		}
		resp = routeResponse(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Route generated",
		zap.String("session_id", sessionID),
		zap.Int("stops", len(resp.Route)),
		zap.Int("total_minutes", resp.Itinerary.Total))
	return &resp, nil
}

// Route возвращает текущий маршрут без пересчёта
func (uc *PlannerUseCase) Route(ctx context.Context, sessionID string) (*dto.RouteResponse, error) {
	var resp dto.RouteResponse
	err := uc.sessions.With(sessionID, func(p *route.Planner) error {
		resp = routeResponse(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadTour заменяет выбор локациями тура и сразу строит маршрут.
// Идентификаторы, которых нет в каталоге, пропускаются.
func (uc *PlannerUseCase) LoadTour(ctx context.Context, sessionID, name string) (*dto.TourLoadResponse, error) {
	tour, ok, err := uc.catalog.TourByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup tour: %w", err)
	}
	if !ok {
		return nil, errors.ErrTourNotFound.WithDetails(map[string]interface{}{"name": name})
	}

	locations, err := uc.catalog.Resolve(ctx, tour.Locations)
	if err != nil {
		return nil, fmt.Errorf("resolve tour locations: %w", err)
	}

	resp := dto.TourLoadResponse{Tour: tour}
	err = uc.sessions.With(sessionID, func(p *route.Planner) error {
		p.Replace(locations)
		if len(locations) == 0 {
			p.SetRoute(nil)
		} else if _, err := p.GenerateRoute(); err != nil {
			return err
		}
		resp.Selection = selectionResponse(sessionID, p)
		resp.Route = routeResponse(sessionID, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Tour loaded",
		zap.String("session_id", sessionID),
		zap.String("tour", tour.Name),
		zap.Int("resolved", len(locations)),
		zap.Int("requested", len(tour.Locations)))
	return &resp, nil
}

func selectionResponse(sessionID string, p *route.Planner) dto.SelectionResponse {
	return dto.SelectionResponse{
		SessionID: sessionID,
		Locations: p.Selection(),
		Summary:   p.Summary(),
	}
}

func routeResponse(sessionID string, p *route.Planner) dto.RouteResponse {
	return dto.RouteResponse{
		SessionID: sessionID,
		Route:     p.Route(),
		Itinerary: p.Itinerary(),
	}
}

// snapshot - выбор и маршрут сессии на момент вызова
func snapshot(sessions *SessionStore, sessionID string) (selection, ordered []domain.Location, err error) {
	err = sessions.With(sessionID, func(p *route.Planner) error {
		selection = p.Selection()
		ordered = p.Route()
		return nil
	})
	return selection, ordered, err
}
