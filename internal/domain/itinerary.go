package domain

// ItineraryStep - остановка маршрута
type ItineraryStep struct {
	Order        int      `json:"order"`
	Location     Location `json:"location"`
	DwellMinutes int      `json:"dwell_minutes"`
	WalkToNext   int      `json:"walk_to_next"`
}

// Itinerary - маршрут с оценкой времени
type Itinerary struct {
	Steps      []ItineraryStep `json:"steps"`
	TotalWalk  int             `json:"total_walk"`
	TotalDwell int             `json:"total_dwell"`
	Total      int             `json:"total"`
}
