package route

import (
	"fmt"

	"github.com/zoo-visit-planner/internal/domain"
)

// Greedy строит порядок обхода методом ближайшего соседа.
// Первый элемент выбора - фиксированный старт; при равных расстояниях побеждает более ранний элемент пула.
// Результат - перестановка входа, вход не изменяется.
func Greedy(selection []domain.Location, dist DistanceFunc) []domain.Location {
	if len(selection) == 0 {
		return []domain.Location{}
	}

	pool := make([]domain.Location, len(selection)-1)
	copy(pool, selection[1:])

	ordered := make([]domain.Location, 0, len(selection))
	ordered = append(ordered, selection[0])

	for len(pool) > 0 {
		tail := ordered[len(ordered)-1]
		best := 0
		bestDist := dist(tail, pool[0])
		for i := 1; i < len(pool); i++ {
			if d := dist(tail, pool[i]); d < bestDist {
				best, bestDist = i, d
			}
		}
		ordered = append(ordered, pool[best])
		pool = append(pool[:best], pool[best+1:]...)
	}

	return ordered
}

// ValidatePermutation проверяет, что маршрут содержит ровно те же локации, что и выбор
func ValidatePermutation(route, selection []domain.Location) error {
	if len(route) != len(selection) {
		return fmt.Errorf("route has %d stops, selection has %d", len(route), len(selection))
	}
	counts := make(map[string]int, len(selection))
	for _, l := range selection {
		counts[l.ID]++
	}
	for _, l := range route {
		if counts[l.ID] == 0 {
			return fmt.Errorf("route stop %q is not part of the selection", l.ID)
		}
		counts[l.ID]--
	}
	return nil
}
