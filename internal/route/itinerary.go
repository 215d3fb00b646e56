package route

import "github.com/zoo-visit-planner/internal/domain"

// ComputeItinerary считает время осмотра и переходов по упорядоченному маршруту
func ComputeItinerary(route []domain.Location) domain.Itinerary {
	it := domain.Itinerary{Steps: make([]domain.ItineraryStep, 0, len(route))}

	for i, loc := range route {
		step := domain.ItineraryStep{
			Order:        i + 1,
			Location:     loc,
			DwellMinutes: loc.DwellMinutes(),
		}
		if i+1 < len(route) {
			step.WalkToNext = WalkingMinutes(loc, route[i+1])
		}
		it.TotalDwell += step.DwellMinutes
		it.TotalWalk += step.WalkToNext
		it.Steps = append(it.Steps, step)
	}

	it.Total = it.TotalWalk + it.TotalDwell
	return it
}
