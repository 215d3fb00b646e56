package dto

import (
	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/mapview"
)

// LocationsResponse - список локаций каталога
type LocationsResponse struct {
	Filter    domain.Filter     `json:"filter"`
	Locations []domain.Location `json:"locations"`
	Total     int               `json:"total"`
}

// ToursResponse - подготовленные туры
type ToursResponse struct {
	Tours []domain.Tour `json:"tours"`
}

// SessionResponse - созданная сессия планирования
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// SelectionResponse - текущий выбор посетителя
type SelectionResponse struct {
	SessionID string                  `json:"session_id"`
	Locations []domain.Location       `json:"locations"`
	Summary   domain.SelectionSummary `json:"summary"`
}

// ToggleResponse - результат переключения локации
type ToggleResponse struct {
	LocationID string `json:"location_id"`
	Selected   bool   `json:"selected"`
	SelectionResponse
}

// RouteResponse - маршрут и расписание
type RouteResponse struct {
	SessionID string            `json:"session_id"`
	Route     []domain.Location `json:"route"`
	Itinerary domain.Itinerary  `json:"itinerary"`
}

// TourLoadResponse - выбор после загрузки тура и построенный по нему маршрут
type TourLoadResponse struct {
	Tour      domain.Tour       `json:"tour"`
	Selection SelectionResponse `json:"selection"`
	Route     RouteResponse     `json:"route"`
}

// HitTestResponse - результат попадания по карте
type HitTestResponse struct {
	Hit       bool              `json:"hit"`
	Location  *domain.Location  `json:"location,omitempty"`
	Logical   domain.Point      `json:"logical"`
	Surface   mapview.Surface   `json:"surface"`
	Transform mapview.Transform `json:"transform"`
}

// PlansResponse - сохранённые планы, новые первыми
type PlansResponse struct {
	Plans []domain.Plan `json:"plans"`
	Total int           `json:"total"`
}

// PlanLoadResponse - план, загруженный в сессию
type PlanLoadResponse struct {
	Plan      domain.Plan       `json:"plan"`
	Selection SelectionResponse `json:"selection"`
	Route     RouteResponse     `json:"route"`
}
