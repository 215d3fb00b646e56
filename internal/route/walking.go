package route

import (
	"math"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/pkg/utils"
)

const (
	// PaceUnitsPerMinute - сколько логических единиц карты посетитель проходит за минуту
	PaceUnitsPerMinute = 80.0
	// MinWalkMinutes - минимальное время перехода между соседними остановками
	MinWalkMinutes = 2
	// FallbackWalkMinutes - время перехода, если у одной из локаций нет координат
	FallbackWalkMinutes = 5
)

// DistanceFunc - метрика, по которой жадный алгоритм выбирает следующую остановку
type DistanceFunc func(a, b domain.Location) float64

// WalkingMinutes оценивает время пешего перехода между локациями, округлённое до минут
func WalkingMinutes(a, b domain.Location) int {
	if !a.HasCoords() || !b.HasCoords() {
		return FallbackWalkMinutes
	}
	minutes := int(math.Round(straightLine(a, b) / PaceUnitsPerMinute))
	if minutes < MinWalkMinutes {
		return MinWalkMinutes
	}
	return minutes
}

// PaceDistance - неокруглённое время перехода в минутах.
// Используется для выбора ближайшей остановки: округление WalkingMinutes склеивает близкие соседние точки в ничью.
func PaceDistance(a, b domain.Location) float64 {
	if !a.HasCoords() || !b.HasCoords() {
		return FallbackWalkMinutes
	}
	return straightLine(a, b) / PaceUnitsPerMinute
}

func straightLine(a, b domain.Location) float64 {
	return utils.EuclideanDistance(a.Coords.X, a.Coords.Y, b.Coords.X, b.Coords.Y)
}
